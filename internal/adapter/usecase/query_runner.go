package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"k8s.io/utils/clock"

	"pixel-match/internal/core/domain"
	"pixel-match/internal/core/port"
	"pixel-match/internal/metrics"
)

// DefaultAttempts is the number of fresh submissions made for one query.
const DefaultAttempts = 3

// Query is one job for the query engine.
type Query struct {
	Text  string
	Label string
	Name  string
}

type queryState int

const (
	stateSubmit queryState = iota
	statePoll
	stateSucceeded
	stateFailed
)

// QueryRunner executes a query on the engine and turns its output into raw
// counts. A job that ends in failure is resubmitted as a new job until the
// attempt budget is used up.
type QueryRunner struct {
	engine   port.QueryEngine
	clock    clock.Clock
	interval time.Duration
	attempts int
	metrics  *metrics.Metrics
}

// QueryRunnerOptions tunes a QueryRunner. Zero values select defaults.
type QueryRunnerOptions struct {
	Attempts     int
	PollInterval time.Duration
	Clock        clock.Clock
	Metrics      *metrics.Metrics
}

// NewQueryRunner creates a runner on top of the engine transport.
func NewQueryRunner(engine port.QueryEngine, opts QueryRunnerOptions) *QueryRunner {
	r := &QueryRunner{
		engine:   engine,
		clock:    opts.Clock,
		interval: opts.PollInterval,
		attempts: opts.Attempts,
		metrics:  opts.Metrics,
	}
	if r.clock == nil {
		r.clock = clock.RealClock{}
	}
	if r.attempts < 1 {
		r.attempts = DefaultAttempts
	}
	return r
}

// Run submits the query, waits for the job to finish and parses the
// result. It blocks while the job is queued or running.
func (r *QueryRunner) Run(ctx context.Context, logger *slog.Logger, q Query) (domain.RawCounts, error) {
	var (
		state   = stateSubmit
		attempt int
		jobID   string
		status  = domain.JobUnknown
		lastErr error
	)
	for {
		switch state {
		case stateSubmit:
			attempt++
			jobID, status, lastErr = "", domain.JobUnknown, nil
			id, err := r.engine.Submit(ctx, q.Text, q.Label, q.Name)
			if err != nil {
				lastErr = fmt.Errorf("submit: %w", err)
				state = stateFailed
				continue
			}
			jobID = id
			logger.Debug("query submitted", "job_id", jobID, "attempt", attempt)
			state = statePoll

		case statePoll:
			s, err := r.engine.Status(ctx, jobID)
			if err != nil {
				lastErr = fmt.Errorf("status of job %s: %w", jobID, err)
				state = stateFailed
				continue
			}
			status = s
			if !status.Terminal() {
				select {
				case <-ctx.Done():
					lastErr = ctx.Err()
					state = stateFailed
				case <-r.clock.After(r.interval):
				}
				continue
			}
			if status == domain.JobSucceeded {
				state = stateSucceeded
			} else {
				state = stateFailed
			}

		case stateFailed:
			r.metrics.Attempt(false)
			if attempt >= r.attempts || ctx.Err() != nil {
				return domain.RawCounts{}, &domain.EngineExecutionError{
					Name:       q.Name,
					Attempts:   attempt,
					LastJobID:  jobID,
					LastStatus: status,
					Err:        lastErr,
				}
			}
			logger.Warn("query attempt failed, resubmitting",
				"job_id", jobID, "attempt", attempt, "status", status, "error", lastErr)
			state = stateSubmit

		case stateSucceeded:
			r.metrics.Attempt(true)
			logger.Debug("query succeeded", "job_id", jobID, "attempt", attempt)
			return r.fetch(ctx, jobID)
		}
	}
}

func (r *QueryRunner) fetch(ctx context.Context, jobID string) (domain.RawCounts, error) {
	body, err := r.engine.Results(ctx, jobID)
	if err != nil {
		return domain.RawCounts{}, fmt.Errorf("results of job %s: %w", jobID, err)
	}
	defer body.Close()

	values, err := ParseCounts(body)
	if err != nil {
		return domain.RawCounts{}, fmt.Errorf("results of job %s: %w", jobID, err)
	}
	return domain.NewRawCounts(values)
}

// ParseCounts reads tab separated query output. Every non-digit character
// is dropped from each field and fields left empty are skipped, so row
// labels and line breaks between rows do not matter.
func ParseCounts(r io.Reader) ([]int64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fields := strings.Split(strings.TrimSpace(string(raw)), "\t")
	values := make([]int64, 0, len(fields))
	for _, f := range fields {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, f)
		if digits == "" {
			continue
		}
		v, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse field %q: %w", f, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, domain.ErrNoNumericFields
	}
	return values, nil
}
