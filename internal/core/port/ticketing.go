package port

import (
	"context"

	"pixel-match/internal/core/domain"
)

// Ticketing is the outbound port to the ticket tracker. Implementations
// must tolerate concurrent calls from independent work units. An empty
// key with a nil error means "not found".
type Ticketing interface {
	// FindTicket returns the key of the first ticket of the given type and
	// status that references the pixel.
	FindTicket(ctx context.Context, ticketType, status, pixelID string) (string, error)
	// FindParent returns the key of the parent ticket of key.
	FindParent(ctx context.Context, key string) (string, error)
	// ReadParties returns the reporter and lead analyst of a ticket.
	ReadParties(ctx context.Context, key string) (domain.Parties, error)
	// PostComment adds a comment to the ticket.
	PostComment(ctx context.Context, key, body string) error
	// AddLabel appends a label to the ticket, keeping existing ones.
	AddLabel(ctx context.Context, key, label string) error
}
