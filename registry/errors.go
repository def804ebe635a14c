package registry

import "errors"

// Sentinel errors; callers match them with errors.Is.
var (
	ErrToolNotFound    = errors.New("tool not found")
	ErrToolExists      = errors.New("tool already registered")
	ErrInvalidTool     = errors.New("invalid tool")
	ErrExecutionFailed = errors.New("tool execution failed")
	ErrInvalidRequest  = errors.New("invalid request")
)

// JSON-RPC 2.0 error codes. The -320xx range holds the
// MCP-assigned tool errors.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
	ErrCodeToolNotFound   = -32001
	ErrCodeToolExecFailed = -32002
)
