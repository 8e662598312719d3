package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

// toolCallParams keeps arguments raw so they reach the extension unchanged.
type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ListTools handles the tools/list method
func (h *Handler) ListTools(_ context.Context, _ *jsonrpc.Request) (*schema.ListToolsResult, *jsonrpc.Error) {
	return &schema.ListToolsResult{Tools: h.catalog.MCPTools()}, nil
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*schema.CallToolResult, *jsonrpc.Error) {
	params := &toolCallParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	tool, ok := h.catalog.Lookup(params.Name)
	if !ok {
		return nil, jsonrpc.NewMethodNotFound(fmt.Sprintf("Unknown tool: %v", params.Name), nil)
	}
	args := params.Arguments
	if len(bytes.TrimSpace(args)) == 0 || string(bytes.TrimSpace(args)) == "null" {
		args = json.RawMessage("{}")
	}
	_ = h.Logger.ToolStarted(ctx, tool.Name)
	payload, err := h.bridge.Call(ctx, tool.Name, args)
	if err != nil {
		failure := NewFailure(tool.Name, err)
		if failure == nil {
			return nil, jsonrpc.NewInternalError(err.Error(), nil)
		}
		_ = h.Logger.ToolFailed(ctx, failure)
		return failureResult(failure), nil
	}
	return textResult(FormatPayload(payload), false), nil
}
