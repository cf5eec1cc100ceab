package port

import (
	"context"
	"io"

	"pixel-match/internal/core/domain"
)

// QueryEngine is the transport to the queue based query service.
type QueryEngine interface {
	// Submit queues a query and returns the job id.
	Submit(ctx context.Context, query, label, name string) (string, error)
	// Status returns the current state of a job.
	Status(ctx context.Context, jobID string) (domain.JobStatus, error)
	// Results streams the raw tabular output of a finished job. The caller
	// closes the reader.
	Results(ctx context.Context, jobID string) (io.ReadCloser, error)
}
