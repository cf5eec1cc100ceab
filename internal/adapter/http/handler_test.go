package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pixel-match/internal/core/domain"
	"pixel-match/internal/core/port"
	"pixel-match/internal/core/port/mocks"
)

func newTestHandler(t *testing.T, runner port.MatchRunner, results port.ResultRepository) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pixel_match_units_total 0\n")
	})
	return NewHandler(context.Background(), runner, results, metrics, logger)
}

func serve(h *Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthAndMetrics(t *testing.T) {
	runner := mocks.NewMockMatchRunner(t)
	runner.EXPECT().Running().Return(true).Once()
	h := newTestHandler(t, runner, nil)

	rec := serve(h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","running":true}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pixel_match_units_total")
}

func TestListRuns(t *testing.T) {
	runID := uuid.New()
	started := time.Date(2019, 4, 15, 5, 0, 0, 0, time.UTC)

	var testCases = []struct {
		name       string
		target     string
		setup      func(repo *mocks.MockResultRepository)
		expectCode int
	}{
		{
			name:   "default limit",
			target: "/api/v1/runs",
			setup: func(repo *mocks.MockResultRepository) {
				repo.EXPECT().ListRuns(mock.Anything, defaultLimit).Return([]domain.RunSummary{
					{ID: runID, Name: "pixel_match", StartedAt: started, FinishedAt: started.Add(time.Hour), ResultCount: 12},
				}, nil).Once()
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "explicit limit",
			target: "/api/v1/runs?limit=3",
			setup: func(repo *mocks.MockResultRepository) {
				repo.EXPECT().ListRuns(mock.Anything, 3).Return(nil, nil).Once()
			},
			expectCode: http.StatusOK,
		},
		{
			name:       "invalid limit",
			target:     "/api/v1/runs?limit=0",
			setup:      func(*mocks.MockResultRepository) {},
			expectCode: http.StatusBadRequest,
		},
		{
			name:   "store error",
			target: "/api/v1/runs",
			setup: func(repo *mocks.MockResultRepository) {
				repo.EXPECT().ListRuns(mock.Anything, defaultLimit).Return(nil, errors.New("conn refused")).Once()
			},
			expectCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockResultRepository(t)
			tc.setup(repo)
			rec := serve(newTestHandler(t, mocks.NewMockMatchRunner(t), repo), http.MethodGet, tc.target)
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}

func TestListRunsBody(t *testing.T) {
	runID := uuid.MustParse("7a4d7c36-4a6e-4f57-9b0e-0f7c8f1b2a11")
	started := time.Date(2019, 4, 15, 5, 0, 0, 0, time.UTC)
	repo := mocks.NewMockResultRepository(t)
	repo.EXPECT().ListRuns(mock.Anything, defaultLimit).Return([]domain.RunSummary{
		{ID: runID, Name: "pixel_match", StartedAt: started, FinishedAt: started, ResultCount: 2},
	}, nil).Once()

	rec := serve(newTestHandler(t, mocks.NewMockMatchRunner(t), repo), http.MethodGet, "/api/v1/runs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{
		"id": "7a4d7c36-4a6e-4f57-9b0e-0f7c8f1b2a11",
		"name": "pixel_match",
		"started_at": "2019-04-15T05:00:00Z",
		"finished_at": "2019-04-15T05:00:00Z",
		"result_count": 2
	}]`, rec.Body.String())
}

func TestRunResults(t *testing.T) {
	runID := uuid.New()
	outcome := domain.Calculate(domain.RawCounts{0, 0, 0, 0, 4, 1})

	repo := mocks.NewMockResultRepository(t)
	repo.EXPECT().RunResults(mock.Anything, runID).Return([]domain.PixelResult{
		{PixelID: "4711", TicketKey: "CAM-7", Outcome: outcome},
	}, nil).Once()
	repo.EXPECT().RunResults(mock.Anything, mock.Anything).Return(nil, nil).Once()
	h := newTestHandler(t, mocks.NewMockMatchRunner(t), repo)

	rec := serve(h, http.MethodGet, "/api/v1/runs/"+runID.String()+"/results")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "4711", got[0]["pixel_id"])
	o := got[0]["outcome"].(map[string]any)
	assert.Nil(t, o["match_rate_hashes"])
	assert.Equal(t, 0.25, o["match_rate_cookies"])

	rec = serve(h, http.MethodGet, "/api/v1/runs/"+uuid.NewString()+"/results")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/runs/not-a-uuid/results")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPixelHistory(t *testing.T) {
	repo := mocks.NewMockResultRepository(t)
	repo.EXPECT().PixelHistory(mock.Anything, "4711", 5).Return([]domain.PixelResult{{PixelID: "4711"}}, nil).Once()

	rec := serve(newTestHandler(t, mocks.NewMockMatchRunner(t), repo), http.MethodGet, "/api/v1/pixels/4711/results?limit=5")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), `[{"pixel_id":"4711"`))
}

func TestResultRoutesWithoutStore(t *testing.T) {
	h := newTestHandler(t, mocks.NewMockMatchRunner(t), nil)
	for _, target := range []string{"/api/v1/runs", "/api/v1/runs/" + uuid.NewString() + "/results", "/api/v1/pixels/1/results"} {
		assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, target).Code, target)
	}
}

func TestTriggerRun(t *testing.T) {
	runner := mocks.NewMockMatchRunner(t)
	done := make(chan struct{})
	runner.EXPECT().Running().Return(false).Once()
	runner.EXPECT().Run(mock.Anything).RunAndReturn(func(context.Context) (domain.RunReport, error) {
		defer close(done)
		return domain.RunReport{Matched: 3}, nil
	}).Once()
	h := newTestHandler(t, runner, nil)

	rec := serve(h, http.MethodPost, "/api/v1/runs")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("triggered run did not start")
	}
	h.Wait()
}

func TestTriggerRunConflict(t *testing.T) {
	runner := mocks.NewMockMatchRunner(t)
	runner.EXPECT().Running().Return(true).Once()
	h := newTestHandler(t, runner, nil)

	rec := serve(h, http.MethodPost, "/api/v1/runs")
	assert.Equal(t, http.StatusConflict, rec.Code)
	h.Wait()
	runner.AssertNotCalled(t, "Run", mock.Anything)
}
