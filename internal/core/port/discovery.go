package port

import (
	"context"

	"pixel-match/internal/core/domain"
)

// PixelDiscovery fetches the current pixel catalog. It is an outbound port.
type PixelDiscovery interface {
	// Discover returns every pixel known to the catalog, eligible or not.
	Discover(ctx context.Context) (domain.Discovery, error)
}
