package retell

import (
	"context"
	"encoding/json"
)

// GetConcurrency reports live call usage against the workspace limit.
func (c *Client) GetConcurrency(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, RouteGetConcurrency.Endpoint())
}
