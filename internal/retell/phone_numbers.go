package retell

import (
	"context"
	"encoding/json"
)

// CreatePhoneNumberRequest buys a number in the given area code.
type CreatePhoneNumberRequest struct {
	AreaCode          int    `json:"area_code"`
	InboundAgentID    string `json:"inbound_agent_id,omitempty"`
	OutboundAgentID   string `json:"outbound_agent_id,omitempty"`
	Nickname          string `json:"nickname,omitempty"`
	InboundWebhookURL string `json:"inbound_webhook_url,omitempty"`
}

func (c *Client) CreatePhoneNumber(ctx context.Context, req CreatePhoneNumberRequest) (json.RawMessage, error) {
	return c.Do(ctx, RouteCreatePhoneNumber.Endpoint().WithJSON(req))
}

func (c *Client) GetPhoneNumber(ctx context.Context, phoneNumber string) (json.RawMessage, error) {
	return c.Do(ctx, RouteGetPhoneNumber.Endpoint(phoneNumber))
}

// UpdatePhoneNumber patches agent bindings, nickname or webhook. A nil value
// clears the field.
func (c *Client) UpdatePhoneNumber(ctx context.Context, phoneNumber string, fields map[string]any) (json.RawMessage, error) {
	return c.Do(ctx, RouteUpdatePhoneNumber.Endpoint(phoneNumber).WithJSON(fields))
}
