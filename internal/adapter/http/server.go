// Package http serves the bot's sidecar endpoints: liveness, readiness, and
// Prometheus metrics. Telegram traffic is long-polled and never passes
// through this server.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the bot is polling and ready.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server is the ops sidecar next to the long-poll loop.
type Server struct {
	srv     *http.Server
	ready   ReadinessChecker
	logger  *slog.Logger
	started time.Time
}

// NewServer wires /healthz, /readyz, and /metrics on the given address.
func NewServer(addr string, ready ReadinessChecker, logger *slog.Logger) *Server {
	s := &Server{
		ready:   ready,
		logger:  logger,
		started: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.health)
	mux.HandleFunc("GET /readyz", s.readiness)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("ops server starting", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown drains connections within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the route mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

type statusBody struct {
	Status string `json:"status"`
	Uptime string `json:"uptime,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, statusBody{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.ready.CheckReadiness(ctx); err != nil {
		s.respond(w, http.StatusServiceUnavailable, statusBody{Status: "not ready", Error: err.Error()})
		return
	}
	s.respond(w, http.StatusOK, statusBody{Status: "ready"})
}

func (s *Server) respond(w http.ResponseWriter, status int, body statusBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("write status response failed", "error", err)
	}
}
