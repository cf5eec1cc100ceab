package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	"pixel-match/internal/core/domain"
)

// UnitHandler processes one work unit. A returned error marks the unit as
// failed; it never affects other units.
type UnitHandler func(ctx context.Context, unit domain.WorkUnit) error

// Coordinator fans work units out to a bounded goroutine pool and waits for
// all of them.
type Coordinator struct {
	limit  int
	logger *slog.Logger
}

// NewCoordinator returns a coordinator running at most limit units at the
// same time. A limit of zero or less runs every unit at once.
func NewCoordinator(limit int, logger *slog.Logger) *Coordinator {
	return &Coordinator{limit: limit, logger: logger}
}

// Run calls handle for every unit and returns once all calls ended. Errors
// and panics are contained per unit and logged. It returns the number of
// failed units.
func (c *Coordinator) Run(ctx context.Context, units []domain.WorkUnit, handle UnitHandler) int {
	if len(units) == 0 {
		return 0
	}
	limit := c.limit
	if limit <= 0 || limit > len(units) {
		limit = len(units)
	}

	var failed atomic.Int64
	p := pool.New().WithMaxGoroutines(limit)
	for _, unit := range units {
		unit := unit
		p.Go(func() {
			if err := c.runUnit(ctx, unit, handle); err != nil {
				failed.Add(1)
				c.logger.Error("work unit failed",
					"pixel", unit.Pixel.ID, "ticket", unit.TicketKey, "error", err)
			}
		})
	}
	p.Wait()
	return int(failed.Load())
}

func (c *Coordinator) runUnit(ctx context.Context, unit domain.WorkUnit, handle UnitHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return handle(ctx, unit)
}
