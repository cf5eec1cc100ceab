package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	defaultLimit = 20
	maxLimit     = 500
)

// handleListRuns returns the most recent runs. It accepts an optional
// `limit` query parameter between 1 and 500, defaulting to 20. Invalid
// parameters result in HTTP 400.
func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	runs, err := h.results.ListRuns(r.Context(), limit)
	if err != nil {
		h.logger.Error("list runs error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, runs)
}

// handleRunResults returns all results of one run. It expects a {runID}
// path parameter holding a UUID. Unknown runs result in HTTP 404.
func (h *Handler) handleRunResults(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	runID, err := uuid.Parse(chi.URLParam(r, "runID"))
	if err != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return
	}
	results, err := h.results.RunResults(r.Context(), runID)
	if err != nil {
		h.logger.Error("run results error", slog.String("run_id", runID.String()), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if results == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

// handlePixelHistory returns the stored results of one pixel, newest
// first. It expects a {pixelID} path parameter and accepts `limit` like
// handleListRuns.
func (h *Handler) handlePixelHistory(w http.ResponseWriter, r *http.Request) {
	if !h.requireStore(w) {
		return
	}
	pixelID := chi.URLParam(r, "pixelID")
	if pixelID == "" {
		http.Error(w, "missing pixel id", http.StatusBadRequest)
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	results, err := h.results.PixelHistory(r.Context(), pixelID, limit)
	if err != nil {
		h.logger.Error("pixel history error", slog.String("pixel", pixelID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, results)
}

func (h *Handler) requireStore(w http.ResponseWriter) bool {
	if h.results == nil {
		http.Error(w, "result store disabled", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return defaultLimit, true
	}
	limit, err := strconv.Atoi(s)
	if err != nil || limit < 1 || limit > maxLimit {
		http.Error(w, "invalid 'limit'", http.StatusBadRequest)
		return 0, false
	}
	return limit, true
}
