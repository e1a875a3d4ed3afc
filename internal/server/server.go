package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/voyagen/telescribe/internal/config"
	"github.com/voyagen/telescribe/internal/iptv"
	"github.com/voyagen/telescribe/internal/transcript"
)

// Server holds dependencies for the HTTP API.
type Server struct {
	transcripts *transcript.Service
	channels    *iptv.Service
	cfg         *config.Config
	version     string
	mux         *http.ServeMux
}

// New creates a Server and registers routes.
func New(transcripts *transcript.Service, channels *iptv.Service, cfg *config.Config, version string) *Server {
	srv := &Server{
		transcripts: transcripts,
		channels:    channels,
		cfg:         cfg,
		version:     version,
		mux:         http.NewServeMux(),
	}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	// Transcripts
	s.mux.HandleFunc("GET /transcript", s.handleTranscript)
	s.mux.HandleFunc("GET /transcript/full-text", s.handleTranscriptText)
	s.mux.HandleFunc("GET /transcript/srt", s.handleTranscriptSRT)

	// TV channels
	s.mux.HandleFunc("GET /tv", s.handleTV)

	// Docs
	s.mux.HandleFunc("GET /docs", handleSwaggerUI)
	s.mux.HandleFunc("GET /docs/openapi.yaml", handleOpenAPISpec)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on the configured port.
// It blocks until the server is shut down or ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := ":" + s.cfg.ServerPort
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      withCORS(withLogging(s)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("ListenAndServe: %w", err)
	}
	return nil
}

// --- middleware ---

// withCORS adds CORS headers to every response and handles preflight OPTIONS requests.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// withLogging tags each request with an id, echoes it in X-Request-Id and
// logs method, status, duration, id and path. ANSI colors are used only
// when stderr is a terminal.
func withLogging(next http.Handler) http.Handler {
	colored := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		if colored {
			log.Printf("%s%-7s\x1b[0m %s%3d\x1b[0m  %s  %s",
				colorForMethod(r.Method), r.Method,
				colorForStatus(sw.status), sw.status,
				formatDuration(duration), id)
		} else {
			log.Printf("%-7s %3d  %s  %s", r.Method, sw.status, formatDuration(duration), id)
		}
		if r.URL.RawQuery != "" {
			log.Printf("         %s?%s", r.URL.Path, r.URL.RawQuery)
		} else {
			log.Printf("         %s", r.URL.Path)
		}
	})
}

func colorForStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "\x1b[32m" // green
	case code >= 300 && code < 400:
		return "\x1b[36m" // cyan
	case code >= 400 && code < 500:
		return "\x1b[33m" // yellow
	default:
		return "\x1b[31m" // red
	}
}

func colorForMethod(method string) string {
	switch method {
	case http.MethodGet:
		return "\x1b[36m" // cyan
	case http.MethodPost:
		return "\x1b[32m" // green
	default:
		return "\x1b[37m" // white
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dus", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: %v", err)
	}
}
