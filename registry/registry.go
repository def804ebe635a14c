package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/goinspect/search"
)

// Config configures a Registry.
type Config struct {
	// SearchConfig tunes the member searcher behind search_members.
	// Nil means defaults. Only NewInspector reads it.
	SearchConfig *search.Config

	// ServerInfo describes this server in the initialize response.
	ServerInfo ServerInfo

	// Logger receives serve-path logs. Nil means slog.Default, which
	// writes to stderr and stays clear of the stdio transport.
	Logger *slog.Logger
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry is an MCP tool registry: go-sdk tool definitions paired
// with local handlers, served over the transports in server.go.
type Registry struct {
	config Config
	logger *slog.Logger

	mu       sync.RWMutex
	tools    map[string]mcp.Tool
	handlers map[string]ToolHandler

	// set by NewInspector; backs search_members across calls so the
	// index cache can do its job
	searcher *search.Searcher
}

// New creates an empty Registry with the given config.
func New(cfg Config) *Registry {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		config:   cfg,
		logger:   logger,
		tools:    make(map[string]mcp.Tool),
		handlers: make(map[string]ToolHandler),
	}
}

// Register adds a tool with its execution handler. The tool name must
// be non-empty and not yet taken.
func (r *Registry) Register(tool mcp.Tool, handler ToolHandler) error {
	if tool.Name == "" {
		return fmt.Errorf("%w: empty tool name", ErrInvalidTool)
	}
	if handler == nil {
		return fmt.Errorf("%w: nil handler for %s", ErrInvalidTool, tool.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[tool.Name]; ok {
		return fmt.Errorf("%w: %s", ErrToolExists, tool.Name)
	}
	r.tools[tool.Name] = tool
	r.handlers[tool.Name] = handler
	return nil
}

// MustRegister is Register but panics on error. Meant for static
// registration at construction time.
func (r *Registry) MustRegister(tool mcp.Tool, handler ToolHandler) {
	if err := r.Register(tool, handler); err != nil {
		panic(err)
	}
}

// RegisterFunc is a convenience for inline tool definition.
func (r *Registry) RegisterFunc(name, description string, inputSchema map[string]any, handler ToolHandler) error {
	return r.Register(mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema,
	}, handler)
}

// Execute runs a tool by name with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	result, err := handler(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExecutionFailed, name, err)
	}
	return result, nil
}

// ListAll returns all registered tools sorted by name.
func (r *Registry) ListAll() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]mcp.Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// Close releases resources held by built-in tools. The registry stays
// usable; a later search_members call rebuilds its index.
func (r *Registry) Close() error {
	if r.searcher != nil {
		return r.searcher.Close()
	}
	return nil
}
