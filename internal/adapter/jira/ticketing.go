package jiraadapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/andygrunwald/go-jira"
	"github.com/hashicorp/go-retryablehttp"

	"pixel-match/internal/config/configs"
	"pixel-match/internal/core/domain"
)

const searchLimit = 500

// issueClient is the part of the Jira API the adapter needs. None of the
// upstream services are interfaces, so jiraAdapter bridges them.
type issueClient interface {
	Search(ctx context.Context, jql string, max int) ([]jira.Issue, *jira.Response, error)
	Get(ctx context.Context, key, fields string) (*jira.Issue, *jira.Response, error)
	AddComment(ctx context.Context, key, body string) (*jira.Response, error)
	Update(ctx context.Context, key string, data map[string]interface{}) (*jira.Response, error)
}

type jiraAdapter struct {
	delegate *jira.Client
}

func (a *jiraAdapter) Search(ctx context.Context, jql string, max int) ([]jira.Issue, *jira.Response, error) {
	return a.delegate.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{MaxResults: max, Fields: []string{"key"}})
}

func (a *jiraAdapter) Get(ctx context.Context, key, fields string) (*jira.Issue, *jira.Response, error) {
	return a.delegate.Issue.GetWithContext(ctx, key, &jira.GetQueryOptions{Fields: fields})
}

func (a *jiraAdapter) AddComment(ctx context.Context, key, body string) (*jira.Response, error) {
	_, resp, err := a.delegate.Issue.AddCommentWithContext(ctx, key, &jira.Comment{Body: body})
	return resp, err
}

func (a *jiraAdapter) Update(ctx context.Context, key string, data map[string]interface{}) (*jira.Response, error) {
	resp, err := a.delegate.Issue.UpdateIssueWithContext(ctx, key, data)
	if err != nil && resp != nil {
		// UpdateIssue is the one call that does not decode the error body.
		err = jira.NewJiraError(resp, err)
	}
	return resp, err
}

// Ticketing implements port.Ticketing on top of the Jira REST API.
type Ticketing struct {
	client    issueClient
	project   string
	leadField string
}

// New creates a Ticketing client authenticating with basic auth. HTTP calls
// are retried on transport errors and 5xx responses.
func New(cfg configs.Jira, logger *slog.Logger) (*Ticketing, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = logger
	tp := jira.BasicAuthTransport{
		Username:  cfg.User,
		Password:  cfg.Token,
		Transport: retryClient.StandardClient().Transport,
	}
	client, err := jira.NewClient(tp.Client(), cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("create jira client: %w", err)
	}
	return newTicketing(&jiraAdapter{delegate: client}, cfg), nil
}

func newTicketing(client issueClient, cfg configs.Jira) *Ticketing {
	return &Ticketing{client: client, project: cfg.Project, leadField: cfg.LeadAnalystField}
}

// FindTicket returns the first ticket of the given type and status whose
// Pixels field mentions pixelID.
func (t *Ticketing) FindTicket(ctx context.Context, ticketType, status, pixelID string) (string, error) {
	jql := fmt.Sprintf("project in (%s) AND Type = %s AND Status in %s AND Pixels ~ %s",
		t.project, ticketType, status, pixelID)
	return t.first(ctx, jql)
}

// FindParent returns the first parent issue of key.
func (t *Ticketing) FindParent(ctx context.Context, key string) (string, error) {
	return t.first(ctx, fmt.Sprintf("issue in parentIssuesOf(%s)", key))
}

func (t *Ticketing) first(ctx context.Context, jql string) (string, error) {
	issues, _, err := t.client.Search(ctx, jql, searchLimit)
	if err != nil {
		return "", fmt.Errorf("search %q: %w", jql, err)
	}
	if len(issues) == 0 {
		return "", nil
	}
	return issues[0].Key, nil
}

// ReadParties returns the reporter and lead analyst display names.
func (t *Ticketing) ReadParties(ctx context.Context, key string) (domain.Parties, error) {
	issue, _, err := t.client.Get(ctx, key, "reporter,"+t.leadField)
	if err != nil {
		return domain.Parties{}, fmt.Errorf("get %s: %w", key, err)
	}
	var parties domain.Parties
	if issue.Fields == nil {
		return parties, nil
	}
	if issue.Fields.Reporter != nil {
		parties.Reporter = issue.Fields.Reporter.DisplayName
	}
	parties.LeadAnalyst = userName(issue.Fields.Unknowns[t.leadField])
	return parties, nil
}

// userName reads a user picker value, which Jira returns as an object, or a
// plain text field.
func userName(v interface{}) string {
	switch f := v.(type) {
	case string:
		return strings.TrimSpace(f)
	case map[string]interface{}:
		for _, k := range []string{"displayName", "name", "value"} {
			if s, ok := f[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// PostComment adds a wiki markup comment.
func (t *Ticketing) PostComment(ctx context.Context, key, body string) error {
	if _, err := t.client.AddComment(ctx, key, body); err != nil {
		return fmt.Errorf("comment on %s: %w", key, err)
	}
	return nil
}

// AddLabel adds label to the ticket's labels.
func (t *Ticketing) AddLabel(ctx context.Context, key, label string) error {
	data := map[string]interface{}{
		"update": map[string]interface{}{
			"labels": []map[string]string{{"add": label}},
		},
	}
	resp, err := t.client.Update(ctx, key, data)
	if err != nil {
		return fmt.Errorf("label %s: %w", key, err)
	}
	if resp != nil && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("label %s: unexpected status %d", key, resp.StatusCode)
	}
	return nil
}
