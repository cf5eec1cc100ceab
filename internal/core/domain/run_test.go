package domain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunAggregateConcurrentPut(t *testing.T) {
	agg := NewRunAggregate()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			agg.Put(fmt.Sprintf("px-%d", i), Calculate(RawCounts{int64(i) + 1, 1, 0, 0, 0, 0}))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, agg.Len())
	snap := agg.Snapshot()
	assert.Equal(t, int64(10), snap["px-9"].HashedCounted)

	delete(snap, "px-9")
	assert.Equal(t, 50, agg.Len(), "snapshot must be a copy")
}

func TestRunRecordOutcomes(t *testing.T) {
	o := Calculate(RawCounts{10, 5, 0, 0, 0, 0})
	r := RunRecord{Results: []PixelResult{{PixelID: "1", Outcome: o}}}
	assert.Equal(t, map[string]MatchOutcome{"1": o}, r.Outcomes())
}

func TestNotificationBody(t *testing.T) {
	p := Pixel{ID: "123", Name: "Spring", StartDate: date("2019-04-01"), EndDate: datePtr("2019-05-01")}
	body := TicketNotFound(p).Body()
	assert.Contains(t, body, "problem locating the Jira ticket")
	assert.Contains(t, body, "Pixel: 123")
	assert.Contains(t, body, "End Date: 20190501")

	assert.Contains(t, NoPixels().Body(), "no pixels to run today")
	assert.Equal(t, "no_pixels", NoPixels().Kind.String())
}
