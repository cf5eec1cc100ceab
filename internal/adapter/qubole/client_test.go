package qubole

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-match/internal/config/configs"
	"pixel-match/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(configs.Engine{URL: srv.URL + "/", Token: "secret", RetryMax: 1}, logger)
	c.http.RetryWaitMin = time.Millisecond
	c.http.RetryWaitMax = time.Millisecond
	return c
}

func TestSubmit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.2/commands", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-AUTH-TOKEN"))

		var req submitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, submitRequest{Query: "select 1", Label: "hive", Name: "CAM-1, 42", CommandType: "HiveCommand"}, req)

		_, _ = io.WriteString(w, `{"id": 81234, "status": "waiting"}`)
	})

	id, err := c.Submit(context.Background(), "select 1", "hive", "CAM-1, 42")
	require.NoError(t, err)
	assert.Equal(t, "81234", id)
}

func TestSubmitRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	})

	_, err := c.Submit(context.Background(), "select 1", "hive", "x")
	assert.ErrorContains(t, err, "unexpected status 401")
}

func TestStatus(t *testing.T) {
	var testCases = []struct {
		status   string
		expected domain.JobStatus
	}{
		{status: "waiting", expected: domain.JobRunning},
		{status: "running", expected: domain.JobRunning},
		{status: "done", expected: domain.JobSucceeded},
		{status: "error", expected: domain.JobFailed},
		{status: "cancelled", expected: domain.JobFailed},
	}
	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v1.2/commands/77", r.URL.Path)
				_ = json.NewEncoder(w).Encode(command{ID: "77", Status: tc.status})
			})
			status, err := c.Status(context.Background(), "77")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestStatusRetriesServerErrors(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"id": 77, "status": "done"}`)
	})

	status, err := c.Status(context.Background(), "77")
	require.NoError(t, err)
	assert.Equal(t, domain.JobSucceeded, status)
	assert.Equal(t, 2, calls)
}

func TestResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.2/commands/77/results", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("inline"))
		_ = json.NewEncoder(w).Encode(resultsResponse{Results: "hashed\t10\t5\r\n", Inline: true})
	})

	rc, err := c.Results(context.Background(), "77")
	require.NoError(t, err)
	defer rc.Close()
	out, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hashed\t10\t5\r\n", string(out))
}

func TestMatchQuery(t *testing.T) {
	q := MatchQuery(domain.Pixel{ID: "4711", StartDate: time.Date(2019, 3, 5, 0, 0, 0, 0, time.UTC)})

	assert.Equal(t, 3, strings.Count(q, "WHERE PIXEL_ID IN (4711)"))
	assert.Equal(t, 3, strings.Count(q, "AND DATA_DATE >= (20190305)"))
	assert.Contains(t, q, "select 'hashed' as type")
	assert.Contains(t, q, "select 'un-hashed' as type")
	assert.Contains(t, q, "select 'cookie' as type")
}
