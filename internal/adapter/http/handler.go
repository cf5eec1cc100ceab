package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pixel-match/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It triggers runs through a MatchRunner and serves archived results
// from a ResultRepository. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	runner  port.MatchRunner
	results port.ResultRepository
	logger  *slog.Logger
	router  chi.Router

	// runCtx outlives single requests; triggered runs stop when it is
	// cancelled.
	runCtx context.Context
	runs   sync.WaitGroup
}

// NewHandler creates a handler with all routes configured. results may be
// nil when no result store is configured; the result routes then answer
// 503. metrics, when not nil, is served on /metrics.
func NewHandler(runCtx context.Context, runner port.MatchRunner, results port.ResultRepository, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{runner: runner, results: results, logger: logger, runCtx: runCtx}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/runs", h.handleListRuns)
		r.Post("/runs", h.handleTriggerRun)
		r.Get("/runs/{runID}/results", h.handleRunResults)
		r.Get("/pixels/{pixelID}/results", h.handlePixelHistory)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// Wait blocks until all runs triggered through the handler returned.
func (h *Handler) Wait() {
	h.runs.Wait()
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "running": h.runner.Running()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
