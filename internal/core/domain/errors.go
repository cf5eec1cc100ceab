package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTicket is returned when no ticket matches a pixel.
	ErrNoTicket = errors.New("no ticket found")
	// ErrInvalidCounts marks query output that is not a valid count vector.
	ErrInvalidCounts = errors.New("invalid count vector")
	// ErrNoNumericFields is returned when query output has no digits at all.
	ErrNoNumericFields = errors.New("no numeric fields in query output")
	// ErrRunInProgress is returned when a run is triggered while another one
	// has not finished yet.
	ErrRunInProgress = errors.New("match run already in progress")
)

// EngineExecutionError is returned when every submission attempt of a query
// ended without success.
type EngineExecutionError struct {
	Name       string
	Attempts   int
	LastJobID  string
	LastStatus JobStatus
	Err        error
}

func (e *EngineExecutionError) Error() string {
	msg := fmt.Sprintf("query %q failed after %d attempts (last job %q, status %s)",
		e.Name, e.Attempts, e.LastJobID, e.LastStatus)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EngineExecutionError) Unwrap() error {
	return e.Err
}
