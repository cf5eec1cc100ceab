package port

import (
	"context"

	"pixel-match/internal/core/domain"
)

// MatchRunner defines the operation exposed by the orchestrator. This is
// the primary port used by the CLI, the scheduler and the HTTP trigger.
type MatchRunner interface {
	// Run executes one full match run. It returns an error only when the
	// run could not start, e.g. discovery failed; per pixel failures are
	// reported in the RunReport.
	Run(ctx context.Context) (domain.RunReport, error)
	// Running reports whether a run is in progress.
	Running() bool
}
