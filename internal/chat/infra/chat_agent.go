package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dzairbox/config"
	"dzairbox/internal/chat/domain"
)

// ChatAgentClient is the HTTP client for the LLM agent's chat
// endpoint.
//
//	Request:  {"message": "...", "known": {...}}
//	Response: {"reply": "..."}
type ChatAgentClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewChatAgentClient() *ChatAgentClient {
	return &ChatAgentClient{
		baseURL: config.AGENT_URL,
		apiKey:  config.AGENT_API_KEY,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ChatAgentClient) SendChat(ctx context.Context, req *domain.AgentRequest) (*domain.AgentResponse, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("agent not configured (AGENT_URL missing)")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("agent call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent returned status %d", resp.StatusCode)
	}

	var out domain.AgentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode agent response: %w", err)
	}
	return &out, nil
}
