package tools

import (
	"context"

	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
)

func voiceOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "get_voice",
			Description: "Gets details of a voice",
			Effect:      EffectRead,
			Params:      []schema.Param{id("voiceId", "The ID of the voice to retrieve")},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.GetVoice(ctx, args.String("voiceId"))
			},
		},
	}
}

func concurrencyOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "get_concurrency_status",
			Description: "Get current concurrency usage and limit. Default limit: 20 concurrent calls. Concurrency Blast available: up to 3x limit or 300 calls at $0.1/min",
			Effect:      EffectRead,
			Params:      []schema.Param{},
			Handler: func(ctx context.Context, _ schema.Args) (any, error) {
				return c.GetConcurrency(ctx)
			},
		},
	}
}
