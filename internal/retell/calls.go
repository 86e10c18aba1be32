package retell

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// CreatePhoneCallRequest is the body of an outbound phone call.
type CreatePhoneCallRequest struct {
	FromNumber                 string            `json:"from_number"`
	ToNumber                   string            `json:"to_number"`
	OverrideAgentID            string            `json:"override_agent_id,omitempty"`
	OverrideAgentVersion       *int              `json:"override_agent_version,omitempty"`
	Direction                  string            `json:"direction,omitempty"`
	Metadata                   map[string]any    `json:"metadata,omitempty"`
	RetellLLMDynamicVariables  map[string]string `json:"retell_llm_dynamic_variables,omitempty"`
	OptOutSensitiveDataStorage *bool             `json:"opt_out_sensitive_data_storage,omitempty"`
	OptInSignedURL             *bool             `json:"opt_in_signed_url,omitempty"`
}

// CreateWebCallRequest is the body of a browser call.
type CreateWebCallRequest struct {
	AgentID                    string            `json:"agent_id"`
	AgentVersion               *int              `json:"agent_version,omitempty"`
	Metadata                   map[string]any    `json:"metadata,omitempty"`
	RetellLLMDynamicVariables  map[string]string `json:"retell_llm_dynamic_variables,omitempty"`
	OptOutSensitiveDataStorage *bool             `json:"opt_out_sensitive_data_storage,omitempty"`
	OptInSignedURL             *bool             `json:"opt_in_signed_url,omitempty"`
}

// ListCallsRequest filters and pages the call history.
type ListCallsRequest struct {
	AgentID        string
	StartTimestamp *int64
	EndTimestamp   *int64
	Limit          int
	Offset         int
	SortOrder      string
	PaginationKey  string
}

// UpdateCallRequest patches a call's metadata and dynamic variables.
type UpdateCallRequest struct {
	Metadata                 map[string]any    `json:"metadata,omitempty"`
	OverrideDynamicVariables map[string]string `json:"override_dynamic_variables,omitempty"`
}

// CreatePhoneCall starts an outbound phone call.
func (c *Client) CreatePhoneCall(ctx context.Context, req CreatePhoneCallRequest) (json.RawMessage, error) {
	return c.Do(ctx, RouteCreatePhoneCall.Endpoint().WithJSON(req))
}

// CreateWebCall registers a web call and returns its access token.
func (c *Client) CreateWebCall(ctx context.Context, req CreateWebCallRequest) (json.RawMessage, error) {
	return c.Do(ctx, RouteCreateWebCall.Endpoint().WithJSON(req))
}

// GetCall retrieves a call by ID.
func (c *Client) GetCall(ctx context.Context, callID string) (json.RawMessage, error) {
	return c.Do(ctx, RouteGetCall.Endpoint(callID))
}

// ListCalls returns calls matching req. The platform pages by key, so Offset
// drops leading entries of the returned page. Entries are kept as sent.
func (c *Client) ListCalls(ctx context.Context, req ListCallsRequest) (json.RawMessage, error) {
	raw, err := c.Do(ctx, RouteListCalls.Endpoint().WithJSON(req.body()))
	if err != nil || req.Offset <= 0 || len(raw) == 0 {
		return raw, err
	}

	var calls []json.RawMessage
	if err := json.Unmarshal(raw, &calls); err != nil {
		return nil, errors.Wrap(err, "decode list-calls page")
	}
	if req.Offset >= len(calls) {
		return json.RawMessage("[]"), nil
	}
	out, err := json.Marshal(calls[req.Offset:])
	if err != nil {
		return nil, errors.Wrap(err, "encode list-calls page")
	}
	return out, nil
}

func (r ListCallsRequest) body() map[string]any {
	body := map[string]any{}
	filter := map[string]any{}
	if r.AgentID != "" {
		filter["agent_id"] = []string{r.AgentID}
	}
	window := map[string]any{}
	if r.StartTimestamp != nil {
		window["lower_threshold"] = *r.StartTimestamp
	}
	if r.EndTimestamp != nil {
		window["upper_threshold"] = *r.EndTimestamp
	}
	if len(window) > 0 {
		filter["start_timestamp"] = window
	}
	if len(filter) > 0 {
		body["filter_criteria"] = filter
	}
	if r.Limit > 0 {
		body["limit"] = r.Limit + max(r.Offset, 0)
	}
	if r.SortOrder != "" {
		body["sort_order"] = r.SortOrder
	}
	if r.PaginationKey != "" {
		body["pagination_key"] = r.PaginationKey
	}
	return body
}

// UpdateCall patches a call.
func (c *Client) UpdateCall(ctx context.Context, callID string, req UpdateCallRequest) (json.RawMessage, error) {
	return c.Do(ctx, RouteUpdateCall.Endpoint(callID).WithJSON(req))
}

// DeleteCall removes a call and its recording.
func (c *Client) DeleteCall(ctx context.Context, callID string) error {
	_, err := c.Do(ctx, RouteDeleteCall.Endpoint(callID))
	return err
}
