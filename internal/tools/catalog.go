package tools

import (
	"github.com/bobmcallan/retell-mcp/internal/flow"
	"github.com/bobmcallan/retell-mcp/internal/retell"
)

// Catalog returns every operation the server exposes, grouped by resource.
// name is reported by get_version.
func Catalog(c *retell.Client, patcher *flow.Patcher, name string) []Operation {
	groups := [][]Operation{
		callOperations(c),
		agentOperations(c),
		phoneNumberOperations(c),
		voiceOperations(c),
		knowledgeBaseOperations(c),
		llmOperations(c),
		conversationFlowOperations(c, patcher),
		sharedComponentOperations(c),
		batchTestOperations(c),
		testCaseOperations(c),
		concurrencyOperations(c),
		{VersionOperation(name)},
	}

	var ops []Operation
	for _, g := range groups {
		ops = append(ops, g...)
	}
	return ops
}
