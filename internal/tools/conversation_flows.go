package tools

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/bobmcallan/retell-mcp/internal/flow"
	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

// checkGraph validates supplied nodes locally before they replace the
// stored list.
func checkGraph(tool string, args schema.Args) error {
	if !args.Has("nodes") {
		return nil
	}
	raw, err := json.Marshal(args.Get("nodes"))
	if err != nil {
		return errors.Wrap(err, "encode nodes")
	}
	if problems := flow.CheckGraph(raw, args.String("start_node_id")); len(problems) > 0 {
		return toolerr.Validation(tool, problems...)
	}
	return nil
}

// checked runs checkGraph before next.
func checked(tool string, next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, args schema.Args) (any, error) {
		if err := checkGraph(tool, args); err != nil {
			return nil, err
		}
		return next(ctx, args)
	}
}

func conversationFlowOperations(c *retell.Client, patcher *flow.Patcher) []Operation {
	return []Operation{
		{
			Name:        "list_conversation_flows",
			Description: "Lists all conversation flows",
			Effect:      EffectRead,
			Params:      []schema.Param{},
			Handler:     Passthrough(c, retell.RouteListConversationFlows),
		},
		{
			Name:        "get_conversation_flow",
			Description: "Retrieves a conversation flow by ID, including all nodes, prompts, and edges",
			Effect:      EffectRead,
			Params: []schema.Param{
				id("conversationFlowId", "The ID of the conversation flow to retrieve"),
				schema.Integer("version", "Optional version number of the conversation flow to retrieve").At(schema.InQuery),
			},
			Handler: Passthrough(c, retell.RouteGetConversationFlow),
		},
		{
			Name:        "update_conversation_flow",
			Description: "Updates an existing conversation flow (nodes, global_prompt, start_node_id, etc.). Supplied nodes replace the whole node list.",
			Effect:      EffectUpdate,
			Params: []schema.Param{
				id("conversationFlowId", "The ID of the conversation flow to update"),
				nodes("Array of flow nodes (conversation, function_call, press_digit, etc.). Each node has an id, type, and type-specific fields."),
				schema.String("global_prompt", "Global prompt appended to all conversation nodes in the flow"),
				schema.String("start_node_id", "ID of the starting node in the flow"),
				stringMap("default_dynamic_variables", "Default dynamic variables as key-value pairs of strings"),
			},
			Handler: checked("update_conversation_flow", Passthrough(c, retell.RouteUpdateConversationFlow)),
		},
		{
			Name:        "update_conversation_flow_node_prompt",
			Description: "Updates the instruction/prompt of a single node in a conversation flow. Fetches the flow, finds the node by ID, replaces its instruction, and saves. " +
				"When the node's instruction is an object ({type, text}) only its text is replaced and the type is kept; otherwise the instruction becomes the given string.",
			Effect:      EffectUpdate,
			Params: []schema.Param{
				id("conversationFlowId", "The ID of the conversation flow containing the node"),
				schema.String("nodeId", "The ID of the specific node to update").Require(),
				schema.String("instruction", "The new instruction/prompt text for the node").Require(),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return patcher.UpdateNodeInstruction(ctx,
					args.String("conversationFlowId"), args.String("nodeId"), args.String("instruction"))
			},
		},
		{
			Name:          "delete_conversation_flow",
			Description:   "Deletes a conversation flow",
			Effect:        EffectDelete,
			Params:        []schema.Param{id("conversationFlowId", "The ID of the conversation flow to delete")},
			DeleteMessage: "Conversation flow {conversationFlowId} deleted successfully",
			Handler:       Passthrough(c, retell.RouteDeleteConversationFlow),
		},
	}
}

func sharedComponentOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "list_shared_components",
			Description: "Lists all shared conversation flow components",
			Effect:      EffectRead,
			Params:      []schema.Param{},
			Handler:     Passthrough(c, retell.RouteListSharedComponents),
		},
		{
			Name:        "create_shared_component",
			Description: "Creates a new shared component (reusable sub-flow). Changes to shared components affect ALL flows that embed them.",
			Effect:      EffectCreate,
			Params: []schema.Param{
				schema.String("name", "Name of the shared component").Require(),
				schema.String("start_node_id", "Entry point node ID").Require(),
				nodes("Array of nodes in the component (same schema as flow nodes)").Require(),
			},
			Handler: checked("create_shared_component", Passthrough(c, retell.RouteCreateSharedComponent)),
		},
		{
			Name:        "get_shared_component",
			Description: "Retrieves a shared component by ID",
			Effect:      EffectRead,
			Params:      []schema.Param{id("componentId", "The ID of the shared component")},
			Handler:     Passthrough(c, retell.RouteGetSharedComponent),
		},
		{
			Name:        "update_shared_component",
			Description: "Updates an existing shared component. WARNING: This updates ALL flows that embed this component!",
			Effect:      EffectUpdate,
			Params: []schema.Param{
				id("componentId", "The ID of the shared component to update"),
				schema.String("name", "Name of the shared component"),
				schema.String("start_node_id", "Entry point node ID"),
				nodes("Array of nodes in the component (same schema as flow nodes)"),
			},
			Handler: checked("update_shared_component", Passthrough(c, retell.RouteUpdateSharedComponent)),
		},
		{
			Name:          "delete_shared_component",
			Description:   "Deletes a shared component. WARNING: This will break all flows that embed this component!",
			Effect:        EffectDelete,
			Params:        []schema.Param{id("componentId", "The ID of the shared component to delete")},
			DeleteMessage: "Shared component {componentId} deleted successfully",
			Handler:       Passthrough(c, retell.RouteDeleteSharedComponent),
		},
	}
}
