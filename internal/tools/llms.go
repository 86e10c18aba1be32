package tools

import (
	"context"

	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

var llmModels = []any{
	"gpt-4o", "gpt-4o-mini", "gpt-4.1", "gpt-4.1-mini", "gpt-4.1-nano",
	"claude-3.7-sonnet", "claude-3.5-haiku", "gemini-2.0-flash", "gemini-2.0-flash-lite",
}

var s2sModels = []any{"gpt-4o-realtime", "gpt-4o-mini-realtime"}

// llmParams declares the fields shared by create and update.
func llmParams() []schema.Param {
	return []schema.Param{
		schema.Integer("version", "Version of the Retell LLM"),
		schema.String("model", "Select the underlying text LLM. If not set, would default to gpt-4o").OneOf(llmModels...),
		schema.String("s2s_model", "Select the underlying speech to speech model. Can only set this or model, not both").OneOf(s2sModels...),
		schema.Number("model_temperature", "If set, will control the randomness of the response. Value ranging from [0,1]"),
		schema.Bool("model_high_priority", "If set to true, will use high priority pool with more dedicated resource"),
		schema.Bool("tool_call_strict_mode", "Only applicable when model is gpt-4o or gpt-4o mini. If set to true, will use structured output"),
		toolDefinitions("general_tools", "A list of tools the model may call"),
		states(),
		schema.String("starting_state", "Name of the starting state. Required if states is not empty"),
		schema.String("begin_message", "First utterance said by the agent in the call"),
		stringMap("default_dynamic_variables", "Default dynamic variables represented as key-value pairs of strings"),
		schema.Array("knowledge_base_ids", "A list of knowledge base ids to use for this resource", schema.String("", "")),
	}
}

// checkModelChoice rejects setting both a text and a speech to speech model.
func checkModelChoice(tool string, args schema.Args) error {
	if args.Has("model") && args.Has("s2s_model") {
		return toolerr.Validation(tool,
			toolerr.FieldError{Field: "s2s_model", Message: "cannot be set together with model"})
	}
	return nil
}

func llmOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "create_retell_llm",
			Description: "Creates a new Retell LLM response engine",
			Effect:      EffectCreate,
			Params: append([]schema.Param{
				schema.String("general_prompt", "Prompt for the agent to follow").Require(),
			}, llmParams()...),
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				if err := checkModelChoice("create_retell_llm", args); err != nil {
					return nil, err
				}
				var req retell.CreateRetellLLMRequest
				if err := args.Decode(&req); err != nil {
					return nil, err
				}
				return c.CreateRetellLLM(ctx, req)
			},
		},
		{
			Name:        "get_retell_llm",
			Description: "Gets a Retell LLM response engine by ID",
			Effect:      EffectRead,
			Params:      []schema.Param{id("llmId", "The ID of the Retell LLM to retrieve")},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.GetRetellLLM(ctx, args.String("llmId"))
			},
		},
		{
			Name:        "update_retell_llm",
			Description: "Updates an existing Retell LLM response engine. Only the supplied fields change.",
			Effect:      EffectUpdate,
			Params: append([]schema.Param{
				id("llmId", "The ID of the Retell LLM to update"),
				schema.String("general_prompt", "Prompt for the agent to follow"),
			}, llmParams()...),
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				if err := checkModelChoice("update_retell_llm", args); err != nil {
					return nil, err
				}
				return c.UpdateRetellLLM(ctx, args.String("llmId"), args.Body())
			},
		},
	}
}
