package port

import (
	"context"

	"github.com/google/uuid"

	"pixel-match/internal/core/domain"
)

// RunArchive persists a finished run. Several archives may be configured;
// each one is written independently.
type RunArchive interface {
	Save(ctx context.Context, run domain.RunRecord) error
}

// ResultRepository is the queryable store of archived runs used by the
// HTTP API. Implementations also satisfy RunArchive.
type ResultRepository interface {
	RunArchive
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error)
	// RunResults returns the results of one run. A nil slice and nil error
	// mean the run is unknown.
	RunResults(ctx context.Context, runID uuid.UUID) ([]domain.PixelResult, error)
	// PixelHistory returns the stored results of one pixel, newest first.
	PixelHistory(ctx context.Context, pixelID string, limit int) ([]domain.PixelResult, error)
}
