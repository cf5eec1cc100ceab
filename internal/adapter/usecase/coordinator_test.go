package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pixel-match/internal/core/domain"
)

func makeUnits(n int) []domain.WorkUnit {
	units := make([]domain.WorkUnit, n)
	for i := range units {
		id := fmt.Sprint(i)
		units[i] = domain.WorkUnit{Pixel: domain.Pixel{ID: id}, TicketKey: "CAM-" + id}
	}
	return units
}

func TestCoordinatorEmpty(t *testing.T) {
	c := NewCoordinator(0, discardLogger())
	failed := c.Run(context.Background(), nil, func(context.Context, domain.WorkUnit) error {
		t.Fatal("handler must not be called")
		return nil
	})
	assert.Zero(t, failed)
}

func TestCoordinatorIsolatesFailures(t *testing.T) {
	c := NewCoordinator(0, discardLogger())

	var (
		mu   sync.Mutex
		done = map[string]bool{}
	)
	failed := c.Run(context.Background(), makeUnits(8), func(_ context.Context, u domain.WorkUnit) error {
		switch u.Pixel.ID {
		case "3":
			return errors.New("engine down")
		case "5":
			panic("unexpected nil")
		}
		mu.Lock()
		done[u.Pixel.ID] = true
		mu.Unlock()
		return nil
	})

	assert.Equal(t, 2, failed)
	assert.Len(t, done, 6)
	assert.False(t, done["3"])
	assert.False(t, done["5"])
}

func TestCoordinatorRespectsLimit(t *testing.T) {
	c := NewCoordinator(2, discardLogger())

	var active, peak atomic.Int32
	c.Run(context.Background(), makeUnits(10), func(context.Context, domain.WorkUnit) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestCoordinatorDefaultRunsAllUnitsAtOnce(t *testing.T) {
	const n = 12
	c := NewCoordinator(0, discardLogger())

	var started sync.WaitGroup
	started.Add(n)
	finished := make(chan struct{})
	go func() {
		c.Run(context.Background(), makeUnits(n), func(context.Context, domain.WorkUnit) error {
			started.Done()
			started.Wait() // only returns when every unit is running
			return nil
		})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("units were not started concurrently")
	}
}
