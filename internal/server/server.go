// Package server exposes the sweep's Prometheus metrics over HTTP for the
// duration of a run. It serves /metrics and a /healthz liveness endpoint,
// both behind the security middleware.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aerolab/foilbench/internal/logging"
	"github.com/aerolab/foilbench/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Server is the metrics HTTP server.
type Server struct {
	addr     string
	metrics  *metrics.SweepMetrics
	security SecurityConfig
	logger   logging.Logger

	httpServer *http.Server
}

// New creates a metrics server bound to addr.
//
// Parameters:
//   - addr: The listen address, e.g. ":9090".
//   - m: The sweep metrics registry to expose.
//   - logger: The server's logger.
//
// Returns:
//   - *Server: The configured server, not yet listening.
func New(addr string, m *metrics.SweepMetrics, logger logging.Logger) *Server {
	s := &Server{
		addr:     addr,
		metrics:  m,
		security: DefaultSecurityConfig(),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.handleMetrics))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.handleHealth))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// handleMetrics serves the Prometheus exposition.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Warn("rejected metrics request",
			logging.String("method", r.Method),
			logging.String("remote", r.RemoteAddr))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.Handler().ServeHTTP(w, r)
}

// handleHealth serves the liveness endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Start begins listening in a background goroutine and shuts the server
// down gracefully when ctx is canceled. Listen failures are logged, not
// fatal: the sweep proceeds without metrics exposure.
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", logging.Err(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics server shutdown failed", logging.Err(err))
		}
	}()
}
