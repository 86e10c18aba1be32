package tools

import (
	"context"

	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
)

// bindingParams declares the agent bindings of a number. On update a null
// unbinds.
func bindingParams(update bool) []schema.Param {
	params := []schema.Param{
		schema.String("inboundAgentId", "Agent answering inbound calls").WireAs("inbound_agent_id"),
		schema.String("outboundAgentId", "Agent placing outbound calls").WireAs("outbound_agent_id"),
		schema.String("nickname", "Label for the number"),
		schema.String("inboundWebhookUrl", "Webhook consulted on inbound calls").WireAs("inbound_webhook_url"),
	}
	if update {
		for i := range params {
			params[i] = params[i].OrNull()
		}
	}
	return params
}

func phoneNumberOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "create_phone_number",
			Description: "Buys a new phone number in the given area code and binds agents to it",
			Effect:      EffectCreate,
			Params: append([]schema.Param{
				schema.Integer("areaCode", "Area code of the number to obtain").Require().WireAs("area_code"),
			}, bindingParams(false)...),
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				var req retell.CreatePhoneNumberRequest
				if err := args.Decode(&req); err != nil {
					return nil, err
				}
				return c.CreatePhoneNumber(ctx, req)
			},
		},
		{
			Name:        "get_phone_number",
			Description: "Gets a phone number and its agent bindings",
			Effect:      EffectRead,
			Params:      []schema.Param{id("phoneNumber", "The phone number to retrieve, in E.164 format")},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.GetPhoneNumber(ctx, args.String("phoneNumber"))
			},
		},
		{
			Name:        "update_phone_number",
			Description: "Updates the agent bindings, nickname or webhook of a phone number. Pass null to clear a binding.",
			Effect:      EffectUpdate,
			Params: append([]schema.Param{
				id("phoneNumber", "The phone number to update, in E.164 format"),
			}, bindingParams(true)...),
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.UpdatePhoneNumber(ctx, args.String("phoneNumber"), args.Body())
			},
		},
	}
}
