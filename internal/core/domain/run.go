package domain

import (
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RunAggregate collects match outcomes of one run keyed by pixel id.
// It is safe for concurrent use.
type RunAggregate struct {
	mu       sync.Mutex
	outcomes map[string]MatchOutcome
}

// NewRunAggregate returns an empty aggregate.
func NewRunAggregate() *RunAggregate {
	return &RunAggregate{outcomes: make(map[string]MatchOutcome)}
}

// Put stores the outcome for a pixel. A later call for the same pixel wins.
func (a *RunAggregate) Put(pixelID string, o MatchOutcome) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.outcomes[pixelID] = o
}

// Len returns the number of stored outcomes.
func (a *RunAggregate) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.outcomes)
}

// Snapshot returns a copy of the stored outcomes.
func (a *RunAggregate) Snapshot() map[string]MatchOutcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return maps.Clone(a.outcomes)
}

// PixelResult is an archived outcome together with the context it was
// produced in. Only the relational store keeps the context fields.
type PixelResult struct {
	PixelID      string       `json:"pixel_id"`
	CampaignName string       `json:"campaign_name,omitempty"`
	TicketKey    string       `json:"ticket_key,omitempty"`
	Outcome      MatchOutcome `json:"outcome"`
}

// RunRecord is the persisted form of a finished run.
type RunRecord struct {
	ID         uuid.UUID
	Name       string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []PixelResult
}

// Outcomes returns the run results keyed by pixel id, the shape of the
// archived run file.
func (r RunRecord) Outcomes() map[string]MatchOutcome {
	out := make(map[string]MatchOutcome, len(r.Results))
	for _, res := range r.Results {
		out[res.PixelID] = res.Outcome
	}
	return out
}

// RunSummary describes a stored run without its results.
type RunSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	ResultCount int       `json:"result_count"`
}

// RunReport is what one call to the orchestrator produced. It is returned
// for logging and for the HTTP trigger endpoint.
type RunReport struct {
	RunID      uuid.UUID `json:"run_id"`
	Discovered int       `json:"discovered"`
	Eligible   int       `json:"eligible"`
	NoTicket   int       `json:"no_ticket"`
	Matched    int       `json:"matched"`
	NoData     int       `json:"no_data"`
	Failed     int       `json:"failed"`
	Archived   bool      `json:"archived"`
}
