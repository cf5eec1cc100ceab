// Package metrics holds the Prometheus collectors of the match job.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Unit outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeNoData   = "no_data"
	OutcomeFailed   = "failed"
	OutcomeNoTicket = "no_ticket"
)

// Metrics groups the collectors. A nil *Metrics records nothing.
type Metrics struct {
	units       *prometheus.CounterVec
	attempts    *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pixel_match_units_total",
			Help: "Pixels processed by outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pixel_match_engine_attempts_total",
			Help: "Query submissions by final job status.",
		}, []string{"result"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pixel_match_run_duration_seconds",
			Help:    "Wall time of complete match runs.",
			Buckets: prometheus.ExponentialBuckets(30, 2, 10),
		}),
	}
	reg.MustRegister(m.units, m.attempts, m.runDuration)
	return m
}

// Unit counts one processed pixel.
func (m *Metrics) Unit(outcome string) {
	if m == nil {
		return
	}
	m.units.WithLabelValues(outcome).Inc()
}

// Attempt counts one query submission that reached a final state.
func (m *Metrics) Attempt(succeeded bool) {
	if m == nil {
		return
	}
	result := "failed"
	if succeeded {
		result = "succeeded"
	}
	m.attempts.WithLabelValues(result).Inc()
}

// RunFinished observes the duration of a run.
func (m *Metrics) RunFinished(d time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.Observe(d.Seconds())
}

// Push sends everything gathered by g to a Prometheus push gateway under
// the given job name.
func Push(url, job string, g prometheus.Gatherer) error {
	return push.New(url, job).Gatherer(g).Push()
}
