package tools

import (
	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
)

func conversationTurns() schema.Param {
	return schema.Array("simulated_conversation", "Simulated conversation turns", schema.Object("", "",
		schema.String("role", "Role in conversation").OneOf("user", "agent").Require(),
		schema.String("content", "Message content").Require(),
	))
}

func testCaseFields() []schema.Param {
	return []schema.Param{
		schema.Record("expected_variables", "Expected variable values after test", schema.Any("", "")),
		schema.Array("expected_node_path", "Expected sequence of node IDs traversed", schema.String("", "")),
	}
}

func batchTestOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "create_batch_test",
			Description: "Run a batch test with specified test case definitions. Pricing: $0.005 per dial (20k calls = $100)",
			Effect:      EffectCreate,
			Params: []schema.Param{
				schema.Array("test_case_definition_ids", "Array of test case definition IDs to run (1-200)",
					schema.String("", "")).Bounds(1, 200).Require(),
				schema.Object("response_engine", "Optional response engine configuration with version pinning",
					schema.String("type", "Response engine type").OneOf("retell-llm").Require(),
					schema.String("llm_id", "LLM model ID").Require(),
					schema.Integer("version", "Pin to specific version"),
				),
			},
			Handler: Passthrough(c, retell.RouteCreateBatchTest),
		},
		{
			Name:        "get_batch_test",
			Description: "Get batch test results by ID, including pass/fail/error counts",
			Effect:      EffectRead,
			Params:      []schema.Param{id("batchTestId", "The ID of the batch test to retrieve")},
			Handler:     Passthrough(c, retell.RouteGetBatchTest),
		},
		{
			Name:        "list_batch_tests",
			Description: "List all batch tests",
			Effect:      EffectRead,
			Params:      []schema.Param{},
			Handler:     Passthrough(c, retell.RouteListBatchTests),
		},
	}
}

func testCaseOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "create_test_case",
			Description: "Create a new test case definition for batch testing",
			Effect:      EffectCreate,
			Params: append([]schema.Param{
				schema.String("name", "Name of the test case").Require(),
				conversationTurns().Require(),
			}, testCaseFields()...),
			Handler: Passthrough(c, retell.RouteCreateTestCase),
		},
		{
			Name:        "get_test_case",
			Description: "Get a test case by ID",
			Effect:      EffectRead,
			Params:      []schema.Param{id("testCaseId", "The ID of the test case to retrieve")},
			Handler:     Passthrough(c, retell.RouteGetTestCase),
		},
		{
			Name:        "update_test_case",
			Description: "Update an existing test case",
			Effect:      EffectUpdate,
			Params: append([]schema.Param{
				id("testCaseId", "The ID of the test case to update"),
				schema.String("name", "Updated name"),
				conversationTurns(),
			}, testCaseFields()...),
			Handler: Passthrough(c, retell.RouteUpdateTestCase),
		},
		{
			Name:          "delete_test_case",
			Description:   "Delete a test case",
			Effect:        EffectDelete,
			Params:        []schema.Param{id("testCaseId", "The ID of the test case to delete")},
			DeleteMessage: "Test case {testCaseId} deleted successfully",
			Handler:       Passthrough(c, retell.RouteDeleteTestCase),
		},
		{
			Name:        "list_test_cases",
			Description: "List all test cases",
			Effect:      EffectRead,
			Params:      []schema.Param{},
			Handler:     Passthrough(c, retell.RouteListTestCases),
		},
	}
}
