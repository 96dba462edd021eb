package service

import (
	"context"
	"encoding/json"
	"strings"

	"dzairbox/internal/chat/domain"
	"dzairbox/internal/chat/port"
)

// OnboardingService drives the AI-assisted onboarding conversation.
// Each turn goes to the LLM agent with everything already known; the
// agent answers in prose and may embed one JSON object with newly
// extracted fields, which gets scraped out and merged into the
// session state.
type OnboardingService struct {
	agent port.ChatAgentCaller
}

func NewOnboardingService(agent port.ChatAgentCaller) *OnboardingService {
	return &OnboardingService{agent: agent}
}

// ProcessMessage runs one conversation turn. The known state is merged
// in place; the returned reply has the JSON blob stripped.
func (s *OnboardingService) ProcessMessage(ctx context.Context, known *domain.ExtractedBusiness, message string) (string, error) {
	resp, err := s.agent.SendChat(ctx, &domain.AgentRequest{
		Message: message,
		Known:   *known,
	})
	if err != nil {
		return "", err
	}

	extracted, reply := ScrapeBusinessJSON(resp.Reply)
	known.Merge(extracted)
	return reply, nil
}

// ScrapeBusinessJSON pulls the first JSON object out of an agent reply
// and returns it alongside the reply text without the blob. LLM output
// is not reliable enough for strict parsing: anything that does not
// decode is ignored and the reply returned untouched.
func ScrapeBusinessJSON(reply string) (domain.ExtractedBusiness, string) {
	var out domain.ExtractedBusiness

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return out, strings.TrimSpace(reply)
	}

	blob := reply[start : end+1]
	if err := json.Unmarshal([]byte(blob), &out); err != nil {
		return domain.ExtractedBusiness{}, strings.TrimSpace(reply)
	}

	cleaned := reply[:start] + reply[end+1:]
	// drop leftover code fences around the removed blob
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return out, strings.TrimSpace(cleaned)
}
