// goinspect prints member reports for Go packages, searches their
// documentation, and serves both operations as MCP tools.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joeshaw/envdecode"

	"github.com/jonwraymond/goinspect/docfmt"
	"github.com/jonwraymond/goinspect/member"
	"github.com/jonwraymond/goinspect/pkgscan"
	"github.com/jonwraymond/goinspect/registry"
	"github.com/jonwraymond/goinspect/report"
	"github.com/jonwraymond/goinspect/search"
)

var version = "dev"

// envConfig carries defaults that flags override.
type envConfig struct {
	Detail int `env:"GOINSPECT_DETAIL,default=0"`
	Width  int `env:"GOINSPECT_WIDTH,default=0"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var env envConfig
	_ = envdecode.Decode(&env)

	fs := flag.NewFlagSet("goinspect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		detail      int
		width       int
		name        string
		query       string
		limit       int
		serve       bool
		showVersion bool
	)

	fs.IntVar(&detail, "d", env.Detail, "detail level 0..3 (names, line, block, full)")
	fs.IntVar(&detail, "detail", env.Detail, "detail level 0..3 (names, line, block, full)")
	fs.IntVar(&width, "w", env.Width, "report width in characters")
	fs.IntVar(&width, "width", env.Width, "report width in characters")
	fs.StringVar(&name, "name", "", "display name for the report header")
	fs.StringVar(&query, "q", "", "search member docs instead of printing the report")
	fs.StringVar(&query, "query", "", "search member docs instead of printing the report")
	fs.IntVar(&limit, "limit", 0, "maximum number of search matches")
	fs.BoolVar(&serve, "serve", false, "serve the inspection tools over MCP stdio")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "goinspect %s\n", version)
		return nil
	}

	if serve {
		return serveMCP(stderr)
	}

	dir := "."
	if fs.NArg() > 0 {
		dir = fs.Arg(0)
	}

	pkg, err := pkgscan.Load(dir)
	if err != nil {
		return err
	}

	if query != "" {
		return runSearch(stdout, pkg, query, limit)
	}

	return report.Fprint(stdout, pkg, report.Options{
		Detail:   docfmt.DetailLevel(detail),
		Width:    width,
		NameHint: name,
	})
}

// runSearch ranks the package members against the query and prints one
// match per line.
func runSearch(stdout io.Writer, pkg *pkgscan.Package, query string, limit int) error {
	s := search.New(search.Config{})
	defer func() {
		_ = s.Close()
	}()

	docs := search.FromTarget(pkg, member.DefaultReserved)
	matches, err := s.Search(query, limit, docs)
	if err != nil {
		return err
	}

	for _, m := range matches {
		line := fmt.Sprintf("%s (%s)", m.Name, m.Kind)
		if m.Synopsis != "" {
			line += " : " + m.Synopsis
		}
		_, _ = fmt.Fprintln(stdout, line)
	}
	return nil
}

// serveMCP runs the inspection registry over stdio until stdin closes
// or a termination signal arrives. Logs go to stderr so the transport
// stream stays clean.
func serveMCP(stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))
	reg := registry.NewInspector(registry.Config{
		ServerInfo: registry.ServerInfo{Name: "goinspect", Version: version},
		Logger:     logger,
	})
	defer func() {
		_ = reg.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return registry.ServeStdio(ctx, reg)
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-d": true, "--d": true,
	"-detail": true, "--detail": true,
	"-w": true, "--w": true,
	"-width": true, "--width": true,
	"-name": true, "--name": true,
	"-q": true, "--q": true,
	"-query": true, "--query": true,
	"-limit": true, "--limit": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
