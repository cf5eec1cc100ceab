package qubole

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"pixel-match/internal/config/configs"
	"pixel-match/internal/core/domain"
)

const commandsPath = "/api/v1.2/commands"

// Client implements port.QueryEngine against the Qubole command API. Hive
// commands are submitted to a cluster label and polled by id.
type Client struct {
	baseURL string
	token   string
	http    *retryablehttp.Client
}

// New creates a client. Single HTTP calls are retried up to cfg.RetryMax
// times; resubmitting failed jobs is the caller's concern.
func New(cfg configs.Engine, logger *slog.Logger) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.Logger = logger
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
		http:    retryClient,
	}
}

type command struct {
	ID     json.Number `json:"id,omitempty"`
	Status string      `json:"status,omitempty"`
}

type submitRequest struct {
	Query       string `json:"query"`
	Label       string `json:"label"`
	Name        string `json:"name"`
	CommandType string `json:"command_type"`
}

type resultsResponse struct {
	Results string `json:"results"`
	Inline  bool   `json:"inline"`
}

// Submit queues a Hive command and returns its id.
func (c *Client) Submit(ctx context.Context, query, label, name string) (string, error) {
	body, err := json.Marshal(submitRequest{Query: query, Label: label, Name: name, CommandType: "HiveCommand"})
	if err != nil {
		return "", err
	}
	var cmd command
	if err = c.do(ctx, http.MethodPost, commandsPath, body, &cmd); err != nil {
		return "", fmt.Errorf("submit command: %w", err)
	}
	if cmd.ID == "" {
		return "", fmt.Errorf("submit command: response has no id")
	}
	return cmd.ID.String(), nil
}

// Status maps the command status onto a job status.
func (c *Client) Status(ctx context.Context, jobID string) (domain.JobStatus, error) {
	var cmd command
	if err := c.do(ctx, http.MethodGet, commandsPath+"/"+jobID, nil, &cmd); err != nil {
		return domain.JobUnknown, fmt.Errorf("command %s status: %w", jobID, err)
	}
	return jobStatus(cmd.Status), nil
}

func jobStatus(s string) domain.JobStatus {
	switch s {
	case "done":
		return domain.JobSucceeded
	case "error", "cancelled":
		return domain.JobFailed
	default:
		return domain.JobRunning
	}
}

// Results returns the inline output of a finished command.
func (c *Client) Results(ctx context.Context, jobID string) (io.ReadCloser, error) {
	var res resultsResponse
	if err := c.do(ctx, http.MethodGet, commandsPath+"/"+jobID+"/results?inline=true", nil, &res); err != nil {
		return nil, fmt.Errorf("command %s results: %w", jobID, err)
	}
	return io.NopCloser(strings.NewReader(res.Results)), nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var payload interface{}
	if body != nil {
		payload = bytes.NewReader(body)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("X-AUTH-TOKEN", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
