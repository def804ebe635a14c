package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MCPVersion is the MCP protocol version the server reports.
const MCPVersion = "2025-06-18"

// MCPRequest is one decoded JSON-RPC request from an MCP client.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse is the JSON-RPC reply for a single request.
type MCPResponse struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *MCPError `json:"error,omitempty"`
}

// MCPError is the JSON-RPC error object carried in failed responses.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func okResponse(id any, result any) MCPResponse {
	return MCPResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func errResponse(id any, code int, message string) MCPResponse {
	return MCPResponse{JSONRPC: "2.0", ID: id, Error: &MCPError{Code: code, Message: message}}
}

// HandleRequest dispatches one MCP request and returns its response.
// Transport loops call this after decoding; it never panics on bad
// params, it answers with a JSON-RPC error instead.
func (r *Registry) HandleRequest(ctx context.Context, req MCPRequest) MCPResponse {
	switch req.Method {
	case "initialize":
		return r.handleInitialize(req.ID)
	case "tools/list":
		return r.handleToolsList(req.ID)
	case "tools/call":
		return r.handleToolsCall(ctx, req.ID, req.Params)
	default:
		return errResponse(req.ID, ErrCodeMethodNotFound, fmt.Sprintf("method %s not found", req.Method))
	}
}

func (r *Registry) handleInitialize(id any) MCPResponse {
	return okResponse(id, map[string]any{
		"protocolVersion": MCPVersion,
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    r.config.ServerInfo.Name,
			"version": r.config.ServerInfo.Version,
		},
	})
}

func (r *Registry) handleToolsList(id any) MCPResponse {
	tools := r.ListAll()

	list := make([]map[string]any, 0, len(tools))
	for _, tool := range tools {
		list = append(list, wireTool(tool))
	}

	return okResponse(id, map[string]any{"tools": list})
}

type callParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (r *Registry) handleToolsCall(ctx context.Context, id any, params json.RawMessage) MCPResponse {
	var call callParams
	if err := json.Unmarshal(params, &call); err != nil {
		return errResponse(id, ErrCodeInvalidParams, err.Error())
	}

	result, err := r.Execute(ctx, call.Name, call.Arguments)
	if err != nil {
		code := ErrCodeToolExecFailed
		if errors.Is(err, ErrToolNotFound) {
			code = ErrCodeToolNotFound
		}
		return errResponse(id, code, err.Error())
	}

	return okResponse(id, result)
}

// wireTool flattens an mcp.Tool into the tools/list JSON shape.
func wireTool(tool mcp.Tool) map[string]any {
	return map[string]any{
		"name":        tool.Name,
		"description": tool.Description,
		"inputSchema": tool.InputSchema,
	}
}
