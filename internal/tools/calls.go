package tools

import (
	"context"
	"sort"

	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

func callOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "create_phone_call",
			Description: "Creates a new outbound phone call",
			Effect:      EffectCreate,
			Params: []schema.Param{
				schema.String("fromNumber", "The phone number to call from").Require().WireAs("from_number"),
				schema.String("toNumber", "The phone number to call to").Require().WireAs("to_number"),
				schema.String("overrideAgentId", "For this particular call, override the agent used with this agent id").WireAs("override_agent_id"),
				schema.Integer("overrideAgentVersion", "For this particular call, override the agent version used with this version").WireAs("override_agent_version"),
				schema.String("direction", "Direction of the call").OneOf("inbound", "outbound").WithDefault("outbound"),
				stringMap("metadata", "Arbitrary key-value data stored with the call"),
				stringMap("retellLlmDynamicVariables", "Dynamic variables to pass to the LLM in key-value pairs").WireAs("retell_llm_dynamic_variables"),
				schema.Bool("optOutSensitiveDataStorage", "Do not store transcripts and recordings").WireAs("opt_out_sensitive_data_storage"),
				schema.Bool("optInSignedUrl", "Return signed URLs for call artifacts").WireAs("opt_in_signed_url"),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				var req retell.CreatePhoneCallRequest
				if err := args.Decode(&req); err != nil {
					return nil, err
				}
				return c.CreatePhoneCall(ctx, req)
			},
		},
		{
			Name:        "create_web_call",
			Description: "Creates a new web call and returns its access token",
			Effect:      EffectCreate,
			Params: []schema.Param{
				schema.String("agentId", "The ID of the agent to use for the call").Require().WireAs("agent_id"),
				schema.Integer("agentVersion", "Version of the agent to use").WireAs("agent_version"),
				stringMap("metadata", "Arbitrary key-value data stored with the call"),
				stringMap("retellLlmDynamicVariables", "Dynamic variables to pass to the LLM in key-value pairs").WireAs("retell_llm_dynamic_variables"),
				schema.Bool("optOutSensitiveDataStorage", "Do not store transcripts and recordings").WireAs("opt_out_sensitive_data_storage"),
				schema.Bool("optInSignedUrl", "Return signed URLs for call artifacts").WireAs("opt_in_signed_url"),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				var req retell.CreateWebCallRequest
				if err := args.Decode(&req); err != nil {
					return nil, err
				}
				return c.CreateWebCall(ctx, req)
			},
		},
		{
			Name:        "get_call",
			Description: "Gets details of a specific call",
			Effect:      EffectRead,
			Params:      []schema.Param{id("callId", "The ID of the call to retrieve")},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.GetCall(ctx, args.String("callId"))
			},
		},
		{
			Name:        "list_calls",
			Description: "Lists calls, optionally filtered by agent and start time window",
			Effect:      EffectRead,
			Params: []schema.Param{
				schema.String("agentId", "Filter calls by agent ID"),
				schema.Integer("startTimestamp", "Filter calls after this timestamp (ms)"),
				schema.Integer("endTimestamp", "Filter calls before this timestamp (ms)"),
				schema.Integer("limit", "Maximum number of calls to return"),
				schema.Integer("offset", "Number of calls to skip"),
				schema.String("sortOrder", "Sort by start time").OneOf("ascending", "descending"),
				schema.String("paginationKey", "Call ID to continue listing after"),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				var in struct {
					AgentID        string `json:"agentId"`
					StartTimestamp *int64 `json:"startTimestamp"`
					EndTimestamp   *int64 `json:"endTimestamp"`
					Limit          int    `json:"limit"`
					Offset         int    `json:"offset"`
					SortOrder      string `json:"sortOrder"`
					PaginationKey  string `json:"paginationKey"`
				}
				if err := args.Decode(&in); err != nil {
					return nil, err
				}
				if err := nonNegative("list_calls", map[string]int{"limit": in.Limit, "offset": in.Offset}); err != nil {
					return nil, err
				}
				return c.ListCalls(ctx, retell.ListCallsRequest(in))
			},
		},
		{
			Name:        "update_call",
			Description: "Updates the metadata or dynamic variables of a call",
			Effect:      EffectUpdate,
			Params: []schema.Param{
				id("callId", "The ID of the call to update"),
				stringMap("metadata", "Replacement metadata"),
				stringMap("dynamicVariables", "Dynamic variables to override").WireAs("override_dynamic_variables"),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				var req retell.UpdateCallRequest
				if err := args.Decode(&req); err != nil {
					return nil, err
				}
				return c.UpdateCall(ctx, args.String("callId"), req)
			},
		},
		{
			Name:          "delete_call",
			Description:   "Deletes a call and its recording",
			Effect:        EffectDelete,
			Params:        []schema.Param{id("callId", "The ID of the call to delete")},
			DeleteMessage: "Call {callId} deleted successfully",
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return nil, c.DeleteCall(ctx, args.String("callId"))
			},
		},
	}
}

// nonNegative rejects negative counts before any request is made.
func nonNegative(tool string, values map[string]int) error {
	var fields []toolerr.FieldError
	for name, v := range values {
		if v < 0 {
			fields = append(fields, toolerr.FieldError{Field: name, Message: "must not be negative"})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return toolerr.Validation(tool, fields...)
}
