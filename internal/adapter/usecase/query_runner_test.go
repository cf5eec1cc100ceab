package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/clock"

	"pixel-match/internal/core/domain"
	"pixel-match/internal/core/port/mocks"
)

const matchOutput = "hashed\t100\t40\nun-hashed\t50\t10\ncookie\t50\t10\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// instantClock fires every wait immediately and counts them.
type instantClock struct {
	clock.RealClock
	waits atomic.Int32
}

func (c *instantClock) After(time.Duration) <-chan time.Time {
	c.waits.Add(1)
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

// stoppedClock never fires.
type stoppedClock struct {
	clock.RealClock
}

func (stoppedClock) After(time.Duration) <-chan time.Time {
	return make(chan time.Time)
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

var testQuery = Query{Text: "select 1", Label: "hive", Name: "CAM-1, 42"}

func TestQueryRunnerRetriesFailedJobs(t *testing.T) {
	engine := mocks.NewMockQueryEngine(t)
	clk := &instantClock{}

	engine.EXPECT().Submit(mock.Anything, "select 1", "hive", "CAM-1, 42").Return("job-1", nil).Once()
	engine.EXPECT().Submit(mock.Anything, "select 1", "hive", "CAM-1, 42").Return("job-2", nil).Once()
	engine.EXPECT().Submit(mock.Anything, "select 1", "hive", "CAM-1, 42").Return("job-3", nil).Once()

	engine.EXPECT().Status(mock.Anything, "job-1").Return(domain.JobFailed, nil).Once()
	engine.EXPECT().Status(mock.Anything, "job-2").Return(domain.JobRunning, nil).Once()
	engine.EXPECT().Status(mock.Anything, "job-2").Return(domain.JobFailed, nil).Once()
	engine.EXPECT().Status(mock.Anything, "job-3").Return(domain.JobRunning, nil).Twice()
	engine.EXPECT().Status(mock.Anything, "job-3").Return(domain.JobSucceeded, nil).Once()
	engine.EXPECT().Results(mock.Anything, "job-3").Return(body(matchOutput), nil).Once()

	runner := NewQueryRunner(engine, QueryRunnerOptions{Clock: clk, PollInterval: time.Minute})
	counts, err := runner.Run(context.Background(), discardLogger(), testQuery)
	require.NoError(t, err)

	assert.Equal(t, domain.RawCounts{100, 40, 50, 10, 50, 10}, counts)
	engine.AssertNumberOfCalls(t, "Submit", 3)
	assert.Equal(t, int32(3), clk.waits.Load())
}

func TestQueryRunnerGivesUpAfterAttempts(t *testing.T) {
	engine := mocks.NewMockQueryEngine(t)

	engine.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("job-9", nil).Times(3)
	engine.EXPECT().Status(mock.Anything, "job-9").Return(domain.JobFailed, nil).Times(3)

	runner := NewQueryRunner(engine, QueryRunnerOptions{Clock: &instantClock{}})
	_, err := runner.Run(context.Background(), discardLogger(), testQuery)

	var execErr *domain.EngineExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 3, execErr.Attempts)
	assert.Equal(t, "job-9", execErr.LastJobID)
	assert.Equal(t, domain.JobFailed, execErr.LastStatus)
}

func TestQueryRunnerSubmitErrorCountsAsAttempt(t *testing.T) {
	engine := mocks.NewMockQueryEngine(t)
	boom := errors.New("connection refused")

	engine.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", boom).Once()
	engine.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("job-2", nil).Once()
	engine.EXPECT().Status(mock.Anything, "job-2").Return(domain.JobSucceeded, nil).Once()
	engine.EXPECT().Results(mock.Anything, "job-2").Return(body("1\t2\t3\t4\t5\t6"), nil).Once()

	runner := NewQueryRunner(engine, QueryRunnerOptions{Attempts: 2, Clock: &instantClock{}})
	counts, err := runner.Run(context.Background(), discardLogger(), testQuery)
	require.NoError(t, err)
	assert.Equal(t, domain.RawCounts{1, 2, 3, 4, 5, 6}, counts)
}

func TestQueryRunnerBadOutputIsNotRetried(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   error
	}{
		{"no digits", "NULL\tNULL", domain.ErrNoNumericFields},
		{"short row", "hashed\t100\t40", domain.ErrInvalidCounts},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := mocks.NewMockQueryEngine(t)
			engine.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("job-1", nil).Once()
			engine.EXPECT().Status(mock.Anything, "job-1").Return(domain.JobSucceeded, nil).Once()
			engine.EXPECT().Results(mock.Anything, "job-1").Return(body(tt.output), nil).Once()

			runner := NewQueryRunner(engine, QueryRunnerOptions{Clock: &instantClock{}})
			_, err := runner.Run(context.Background(), discardLogger(), testQuery)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestQueryRunnerStopsPollingOnCancel(t *testing.T) {
	engine := mocks.NewMockQueryEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("job-1", nil).Once()
	engine.EXPECT().Status(mock.Anything, "job-1").Return(domain.JobRunning, nil).Once()

	runner := NewQueryRunner(engine, QueryRunnerOptions{Clock: stoppedClock{}})
	_, err := runner.Run(ctx, discardLogger(), testQuery)

	var execErr *domain.EngineExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 1, execErr.Attempts)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseCounts(t *testing.T) {
	got, err := ParseCounts(strings.NewReader(" 1,024\t 2 \tx\t3\n"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1024, 2, 3}, got)

	_, err = ParseCounts(strings.NewReader("99999999999999999999999"))
	assert.Error(t, err)

	_, err = ParseCounts(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrNoNumericFields)
}
