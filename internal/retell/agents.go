package retell

import (
	"context"
	"encoding/json"
)

// ResponseEngine binds an agent to an LLM or a conversation flow.
type ResponseEngine struct {
	Type               string `json:"type"`
	LLMID              string `json:"llm_id,omitempty"`
	ConversationFlowID string `json:"conversation_flow_id,omitempty"`
	Version            *int   `json:"version,omitempty"`
}

// CreateAgentRequest is the body of a new agent.
type CreateAgentRequest struct {
	ResponseEngine ResponseEngine `json:"response_engine"`
	VoiceID        string         `json:"voice_id"`
	AgentName      string         `json:"agent_name,omitempty"`
	VoiceModel     string         `json:"voice_model,omitempty"`
	Language       string         `json:"language,omitempty"`
	WebhookURL     string         `json:"webhook_url,omitempty"`
}

// CreateAgent creates a voice agent.
func (c *Client) CreateAgent(ctx context.Context, req CreateAgentRequest) (json.RawMessage, error) {
	return c.Do(ctx, RouteCreateAgent.Endpoint().WithJSON(req))
}

// GetAgent retrieves an agent by ID.
func (c *Client) GetAgent(ctx context.Context, agentID string) (json.RawMessage, error) {
	return c.Do(ctx, RouteGetAgent.Endpoint(agentID))
}

// UpdateAgent patches the given fields. Only keys present in fields are sent.
func (c *Client) UpdateAgent(ctx context.Context, agentID string, fields map[string]any) (json.RawMessage, error) {
	return c.Do(ctx, RouteUpdateAgent.Endpoint(agentID).WithJSON(fields))
}
