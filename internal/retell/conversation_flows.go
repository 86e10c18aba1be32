package retell

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
)

// GetConversationFlow returns the flow document as sent by the platform. A
// nil version fetches the latest.
func (c *Client) GetConversationFlow(ctx context.Context, flowID string, version *int) (json.RawMessage, error) {
	ep := RouteGetConversationFlow.Endpoint(flowID)
	if version != nil {
		ep = ep.WithQuery(url.Values{"version": {strconv.Itoa(*version)}})
	}
	return c.Do(ctx, ep)
}

// UpdateConversationFlow submits fields as a flow update. Arrays such as
// nodes replace the stored value in full.
func (c *Client) UpdateConversationFlow(ctx context.Context, flowID string, fields any) (json.RawMessage, error) {
	return c.Do(ctx, RouteUpdateConversationFlow.Endpoint(flowID).WithJSON(fields))
}
