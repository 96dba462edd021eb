package port

import (
	"context"

	"dzairbox/internal/chat/domain"
)

// ChatAgentCaller is the boundary to the external LLM agent. The
// extraction heuristics live behind this interface; this service only
// owns the merge of the structured data the agent returns.
type ChatAgentCaller interface {
	SendChat(ctx context.Context, req *domain.AgentRequest) (*domain.AgentResponse, error)
}
