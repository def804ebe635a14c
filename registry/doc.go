// Package registry exposes object inspection over MCP. It pairs
// go-sdk tool definitions with local handlers, speaks the JSON-RPC
// subset MCP clients need (initialize, tools/list, tools/call), and
// ships transports for stdio, plain HTTP and SSE.
//
// Features:
//   - Local tool registration with handlers
//   - Built-in inspection tools via NewInspector
//   - MCP protocol handlers (initialize, tools/list, tools/call)
//   - Multiple transports (stdio, HTTP, SSE)
//
// NewInspector pre-registers four tools:
//   - inspect: render the member report for a Go package directory
//   - search_members: rank package members against a query
//   - read_lines: load a text file as cleaned lines
//   - write_lines: save lines with an optional comment header
//
// Example usage:
//
//	reg := registry.NewInspector(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "goinspect",
//	        Version: "1.0.0",
//	    },
//	})
//	defer reg.Close()
//
//	reg.RegisterFunc(
//	    "echo",
//	    "Echoes back the input",
//	    map[string]any{
//	        "type": "object",
//	        "properties": map[string]any{
//	            "message": map[string]any{"type": "string"},
//	        },
//	    },
//	    func(ctx context.Context, args map[string]any) (any, error) {
//	        return args, nil
//	    },
//	)
//
//	registry.ServeStdio(ctx, reg)
package registry
