package registry

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// ServeStdio runs the registry as an MCP server over stdin/stdout,
// one JSON-RPC message per line. It blocks until stdin closes or ctx
// is cancelled. Logs go to the registry logger, never to stdout.
func ServeStdio(ctx context.Context, r *Registry) error {
	in := bufio.NewScanner(os.Stdin)
	out := json.NewEncoder(os.Stdout)

	r.logger.InfoContext(ctx, "mcp server listening on stdio",
		slog.String("server", r.config.ServerInfo.Name))

	for in.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var req MCPRequest
		if err := json.Unmarshal(in.Bytes(), &req); err != nil {
			r.logger.WarnContext(ctx, "request parse failed", slog.String("err", err.Error()))
			if err := out.Encode(errResponse(nil, ErrCodeParseError, err.Error())); err != nil {
				return fmt.Errorf("encode parse error response: %w", err)
			}
			continue
		}

		// Notifications carry no id and expect no reply.
		if strings.HasPrefix(req.Method, "notifications/") {
			r.logger.DebugContext(ctx, "notification skipped", slog.String("method", req.Method))
			continue
		}

		start := time.Now()
		resp := r.HandleRequest(ctx, req)
		r.logger.DebugContext(ctx, "request handled",
			slog.String("method", req.Method),
			slog.Duration("dur", time.Since(start)))

		if err := out.Encode(resp); err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
	}

	if err := in.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	return nil
}

// ServeHTTP returns an http.Handler that answers JSON-RPC requests
// POSTed one per body. Other methods get 405.
func ServeHTTP(r *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, hr *http.Request) {
		if hr.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ctx := hr.Context()

		var req MCPRequest
		if err := json.NewDecoder(hr.Body).Decode(&req); err != nil {
			r.logger.WarnContext(ctx, "request parse failed", slog.String("err", err.Error()))
			replyJSON(w, errResponse(nil, ErrCodeParseError, err.Error()))
			return
		}

		start := time.Now()
		resp := r.HandleRequest(ctx, req)
		r.logger.DebugContext(ctx, "request handled",
			slog.String("method", req.Method),
			slog.Duration("dur", time.Since(start)))

		replyJSON(w, resp)
	})
}

func replyJSON(w http.ResponseWriter, resp MCPResponse) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// ServeSSE returns an http.Handler that answers each POSTed request
// with a Server-Sent Events stream carrying a single message event.
func ServeSSE(r *Registry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, hr *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}
		ctx := hr.Context()

		var req MCPRequest
		if err := json.NewDecoder(hr.Body).Decode(&req); err != nil {
			r.logger.WarnContext(ctx, "request parse failed", slog.String("err", err.Error()))
			pushEvent(w, flusher, "error", errResponse(nil, ErrCodeParseError, err.Error()))
			return
		}

		resp := r.HandleRequest(ctx, req)
		r.logger.DebugContext(ctx, "request handled", slog.String("method", req.Method))
		pushEvent(w, flusher, "message", resp)
	})
}

func pushEvent(w http.ResponseWriter, f http.Flusher, event string, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		return
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, body); err != nil {
		return
	}
	f.Flush()
}
