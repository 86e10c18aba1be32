package tools

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/retell-mcp/internal/common"
)

// NewMCPServer creates an MCP server exposing every registered operation.
func NewMCPServer(name string, r *Registry) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	r.Bind(s)
	return s
}

// NewHTTPHandler serves s over the streamable HTTP transport.
func NewHTTPHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s, server.WithStateLess(true))
}

// Bind registers each operation as an MCP tool advertising its JSON Schema.
func (r *Registry) Bind(s *server.MCPServer) {
	for _, name := range r.order {
		e := r.entries[name]
		tool := mcp.NewToolWithRawSchema(name, e.op.Description, e.contract.InputSchema())
		annotate(&tool, e.op.Effect)
		s.AddTool(tool, r.toolHandler(name))
	}
}

func (r *Registry) toolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := r.Dispatch(ctx, name, request.GetArguments())
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(result), nil
	}
}

func annotate(tool *mcp.Tool, effect Effect) {
	for _, opt := range []mcp.ToolOption{
		mcp.WithReadOnlyHintAnnotation(effect == EffectRead),
		mcp.WithDestructiveHintAnnotation(effect == EffectDelete || effect == EffectUpdate),
		mcp.WithIdempotentHintAnnotation(effect != EffectCreate),
		mcp.WithOpenWorldHintAnnotation(true),
	} {
		opt(tool)
	}
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// textResult renders result as JSON text content.
func textResult(result any) *mcp.CallToolResult {
	out, err := json.Marshal(result)
	if err != nil {
		return errorResult("failed to marshal result: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
	}
}
