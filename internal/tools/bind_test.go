package tools

import (
	"encoding/json"
	"net/http"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listTools calls tools/list on the MCPServer and returns the tools.
func listTools(t *testing.T, s *mcpserver.MCPServer) []mcpgo.Tool {
	t.Helper()

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`)
	resp, ok := s.HandleMessage(t.Context(), msg).(mcpgo.JSONRPCResponse)
	require.True(t, ok)

	resultJSON, err := json.Marshal(resp.Result)
	require.NoError(t, err)

	var result mcpgo.ListToolsResult
	require.NoError(t, json.Unmarshal(resultJSON, &result))
	return result.Tools
}

// callTool calls a tool on the MCPServer and returns the result.
func callTool(t *testing.T, s *mcpserver.MCPServer, name string, args map[string]any) *mcpgo.CallToolResult {
	t.Helper()

	params, err := json.Marshal(map[string]any{"name": name, "arguments": args})
	require.NoError(t, err)

	msg := json.RawMessage(`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":` + string(params) + `}`)
	resp, ok := s.HandleMessage(t.Context(), msg).(mcpgo.JSONRPCResponse)
	require.True(t, ok)

	resultJSON, err := json.Marshal(resp.Result)
	require.NoError(t, err)

	var result mcpgo.CallToolResult
	require.NoError(t, json.Unmarshal(resultJSON, &result))
	return &result
}

// extractText extracts the text field from an MCP content block.
func extractText(t *testing.T, content mcpgo.Content) string {
	t.Helper()
	raw, _ := json.Marshal(content)
	var tc struct {
		Text string `json:"text"`
	}
	json.Unmarshal(raw, &tc)
	return tc.Text
}

func TestBind_ListsCatalog(t *testing.T) {
	r := newTestRegistry(t, newFakePlatform(), nil)
	tools := listTools(t, NewMCPServer("retell-mcp", r))

	require.Len(t, tools, len(r.Names()))

	byName := make(map[string]mcpgo.Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}

	call := byName["create_phone_call"]
	assert.Equal(t, "object", call.InputSchema.Type)
	assert.ElementsMatch(t, []string{"fromNumber", "toNumber"}, call.InputSchema.Required)
	assert.Contains(t, call.InputSchema.Properties, "direction")

	get := byName["get_call"]
	require.NotNil(t, get.Annotations.ReadOnlyHint)
	assert.True(t, *get.Annotations.ReadOnlyHint)

	remove := byName["delete_call"]
	require.NotNil(t, remove.Annotations.DestructiveHint)
	assert.True(t, *remove.Annotations.DestructiveHint)
}

func TestBind_CallSuccess(t *testing.T) {
	platform := newFakePlatform()
	platform.on(http.MethodGet, "/get-call/call_1", http.StatusOK, `{"call_id":"call_1","call_status":"ended"}`)
	r := newTestRegistry(t, platform, nil)

	result := callTool(t, NewMCPServer("retell-mcp", r), "get_call", map[string]any{"callId": "call_1"})
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	var call map[string]any
	require.NoError(t, json.Unmarshal([]byte(extractText(t, result.Content[0])), &call))
	assert.Equal(t, "call_1", call["call_id"])
	assert.Equal(t, "ended", call["call_status"])
}

func TestBind_CallFailureIsErrorResult(t *testing.T) {
	platform := newFakePlatform()
	r := newTestRegistry(t, platform, nil)
	s := NewMCPServer("retell-mcp", r)

	result := callTool(t, s, "get_call", map[string]any{})
	assert.True(t, result.IsError)
	assert.Equal(t, "invalid arguments for get_call: callId: required field is missing", extractText(t, result.Content[0]))

	result = callTool(t, s, "get_agent", map[string]any{"agentId": "missing"})
	assert.True(t, result.IsError)
	assert.Contains(t, extractText(t, result.Content[0]), "HTTP 404")
	assert.Len(t, platform.recorded(), 1)
}
