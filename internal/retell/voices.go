package retell

import (
	"context"
	"encoding/json"
)

func (c *Client) GetVoice(ctx context.Context, voiceID string) (json.RawMessage, error) {
	return c.Do(ctx, RouteGetVoice.Endpoint(voiceID))
}
