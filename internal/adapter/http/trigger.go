package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"pixel-match/internal/core/domain"
)

// handleTriggerRun starts a match run in the background and returns HTTP
// 202 right away. If a run is already in progress it returns HTTP 409.
// The run outlives the request and is cancelled with the handler's run
// context.
func (h *Handler) handleTriggerRun(w http.ResponseWriter, r *http.Request) {
	if h.runner.Running() {
		http.Error(w, domain.ErrRunInProgress.Error(), http.StatusConflict)
		return
	}

	h.runs.Add(1)
	go func() {
		defer h.runs.Done()
		report, err := h.runner.Run(h.runCtx)
		switch {
		case errors.Is(err, domain.ErrRunInProgress):
			h.logger.Warn("triggered run skipped", slog.Any("error", err))
		case err != nil:
			h.logger.Error("triggered run failed", slog.String("run_id", report.RunID.String()), slog.Any("error", err))
		default:
			h.logger.Info("triggered run finished", slog.Any("report", report))
		}
	}()

	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}
