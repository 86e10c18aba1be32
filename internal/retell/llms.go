package retell

import (
	"context"
	"encoding/json"
)

// CreateRetellLLMRequest configures a new LLM response engine. Tool and state
// definitions are forwarded as validated JSON objects.
type CreateRetellLLMRequest struct {
	Version                 *int              `json:"version,omitempty"`
	Model                   string            `json:"model,omitempty"`
	S2SModel                string            `json:"s2s_model,omitempty"`
	ModelTemperature        *float64          `json:"model_temperature,omitempty"`
	ModelHighPriority       *bool             `json:"model_high_priority,omitempty"`
	ToolCallStrictMode      *bool             `json:"tool_call_strict_mode,omitempty"`
	GeneralPrompt           string            `json:"general_prompt"`
	GeneralTools            []map[string]any  `json:"general_tools,omitempty"`
	States                  []map[string]any  `json:"states,omitempty"`
	StartingState           string            `json:"starting_state,omitempty"`
	BeginMessage            string            `json:"begin_message,omitempty"`
	DefaultDynamicVariables map[string]string `json:"default_dynamic_variables,omitempty"`
	KnowledgeBaseIDs        []string          `json:"knowledge_base_ids,omitempty"`
}

func (c *Client) CreateRetellLLM(ctx context.Context, req CreateRetellLLMRequest) (json.RawMessage, error) {
	return c.Do(ctx, RouteCreateRetellLLM.Endpoint().WithJSON(req))
}

func (c *Client) GetRetellLLM(ctx context.Context, llmID string) (json.RawMessage, error) {
	return c.Do(ctx, RouteGetRetellLLM.Endpoint(llmID))
}

// UpdateRetellLLM patches the given fields.
func (c *Client) UpdateRetellLLM(ctx context.Context, llmID string, fields map[string]any) (json.RawMessage, error) {
	return c.Do(ctx, RouteUpdateRetellLLM.Endpoint(llmID).WithJSON(fields))
}
