package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/goinspect/docfmt"
	"github.com/jonwraymond/goinspect/member"
	"github.com/jonwraymond/goinspect/pkgscan"
	"github.com/jonwraymond/goinspect/report"
	"github.com/jonwraymond/goinspect/search"
	"github.com/jonwraymond/goinspect/textfile"
)

// NewInspector creates a Registry pre-loaded with the inspection
// tools: inspect, search_members, read_lines and write_lines. Close
// the registry when done to release the search index.
func NewInspector(cfg Config) *Registry {
	r := New(cfg)

	searchCfg := search.Config{}
	if cfg.SearchConfig != nil {
		searchCfg = *cfg.SearchConfig
	}
	r.searcher = search.New(searchCfg)

	r.MustRegister(inspectTool(), r.inspectHandler)
	r.MustRegister(searchMembersTool(), r.searchMembersHandler)
	r.MustRegister(readLinesTool(), readLinesHandler)
	r.MustRegister(writeLinesTool(), writeLinesHandler)
	return r
}

func inspectTool() mcp.Tool {
	return mcp.Tool{
		Name:        "inspect",
		Description: "Render the member report for a Go package directory",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Package directory, defaults to the current one",
				},
				"detail": map[string]any{
					"type":        "integer",
					"description": "Level of detail from 0 (names) to 3 (full docs)",
					"minimum":     0,
					"maximum":     3,
				},
				"width": map[string]any{
					"type":        "integer",
					"description": "Report width in characters, defaults to 96",
				},
				"name": map[string]any{
					"type":        "string",
					"description": "Display name used when the package has none",
				},
			},
		},
	}
}

func (r *Registry) inspectHandler(ctx context.Context, args map[string]any) (any, error) {
	pkg, err := pkgscan.Load(stringArg(args, "path", "."))
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	opts := report.Options{
		Detail:   docfmt.DetailLevel(intArg(args, "detail", 0)),
		Width:    intArg(args, "width", 0),
		NameHint: stringArg(args, "name", ""),
	}
	if err := report.Fprint(&b, pkg, opts); err != nil {
		return nil, err
	}
	return map[string]any{"report": b.String()}, nil
}

func searchMembersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_members",
		Description: "Rank the members of a Go package against a query",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type":        "string",
					"description": "Package directory, defaults to the current one",
				},
				"query": map[string]any{
					"type":        "string",
					"description": "Search terms; empty lists the first members",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of matches, defaults to 10",
				},
			},
		},
	}
}

func (r *Registry) searchMembersHandler(ctx context.Context, args map[string]any) (any, error) {
	pkg, err := pkgscan.Load(stringArg(args, "path", "."))
	if err != nil {
		return nil, err
	}

	docs := search.FromTarget(pkg, member.DefaultReserved)
	matches, err := r.searcher.Search(stringArg(args, "query", ""), intArg(args, "limit", 0), docs)
	if err != nil {
		return nil, err
	}
	return map[string]any{"matches": matches}, nil
}

func readLinesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "read_lines",
		Description: "Load a text file as a list of cleaned lines",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type": "string",
				},
				"keep_comments": map[string]any{
					"type":        "boolean",
					"description": "Keep comment lines instead of dropping them",
				},
				"keep_empty": map[string]any{
					"type":        "boolean",
					"description": "Keep blank lines instead of dropping them",
				},
				"comment": map[string]any{
					"type":        "string",
					"description": "Comment line prefix, defaults to #",
				},
			},
			"required": []string{"path"},
		},
	}
}

func readLinesHandler(ctx context.Context, args map[string]any) (any, error) {
	path := stringArg(args, "path", "")
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", ErrInvalidRequest)
	}

	lines, err := textfile.Lines(path, textfile.LoadOptions{
		KeepEmpty:    boolArg(args, "keep_empty"),
		KeepComments: boolArg(args, "keep_comments"),
		Comment:      stringArg(args, "comment", ""),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"lines": lines, "count": len(lines)}, nil
}

func writeLinesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "write_lines",
		Description: "Save lines to a text file with an optional comment header",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{
					"type": "string",
				},
				"lines": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"head": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Header lines written as comments before the body",
				},
				"append": map[string]any{
					"type":        "boolean",
					"description": "Append to the file instead of overwriting",
				},
				"comment": map[string]any{
					"type":        "string",
					"description": "Header comment prefix, defaults to '# '",
				},
			},
			"required": []string{"path"},
		},
	}
}

func writeLinesHandler(ctx context.Context, args map[string]any) (any, error) {
	path := stringArg(args, "path", "")
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", ErrInvalidRequest)
	}

	body := stringsArg(args, "lines")
	err := textfile.Save(path, body, textfile.SaveOptions{
		Head:    stringsArg(args, "head"),
		Append:  boolArg(args, "append"),
		Comment: stringArg(args, "comment", ""),
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"written": len(body)}, nil
}
