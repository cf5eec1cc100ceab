package port

import (
	"context"

	"pixel-match/internal/core/domain"
)

// Notifier delivers alert mails. Delivery is best effort.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}
