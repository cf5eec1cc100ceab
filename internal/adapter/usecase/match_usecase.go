package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"pixel-match/internal/core/domain"
	"pixel-match/internal/core/port"
	"pixel-match/internal/metrics"
)

// QueryBuilder renders the match query of a pixel.
type QueryBuilder func(p domain.Pixel) string

// MatchUseCase runs the match job: discovery, ticket resolution, one query
// per pixel, reporting and archiving. It implements port.MatchRunner.
type MatchUseCase struct {
	discovery   port.PixelDiscovery
	notifier    port.Notifier
	archives    []port.RunArchive
	resolver    *Resolver
	reporter    *Reporter
	runner      *QueryRunner
	coordinator *Coordinator
	queries     QueryBuilder
	queryLabel  string
	name        string
	clock       clock.PassiveClock
	logger      *slog.Logger
	metrics     *metrics.Metrics

	running atomic.Bool
}

// MatchDeps are the collaborators of a MatchUseCase.
type MatchDeps struct {
	Discovery   port.PixelDiscovery
	Notifier    port.Notifier
	Archives    []port.RunArchive
	Resolver    *Resolver
	Reporter    *Reporter
	Runner      *QueryRunner
	Coordinator *Coordinator
	Queries     QueryBuilder
	Clock       clock.PassiveClock
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
}

// NewMatchUseCase wires a use case. name identifies run records; label is
// the engine cluster label queries are sent to.
func NewMatchUseCase(deps MatchDeps, name, label string) *MatchUseCase {
	u := &MatchUseCase{
		discovery:   deps.Discovery,
		notifier:    deps.Notifier,
		archives:    deps.Archives,
		resolver:    deps.Resolver,
		reporter:    deps.Reporter,
		runner:      deps.Runner,
		coordinator: deps.Coordinator,
		queries:     deps.Queries,
		queryLabel:  label,
		name:        name,
		clock:       deps.Clock,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
	}
	if u.clock == nil {
		u.clock = clock.RealClock{}
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	return u
}

type unitCounters struct {
	matched atomic.Int64
	noData  atomic.Int64
}

// Run executes one match run. Only a discovery failure or a concurrent run
// makes it return an error; everything that goes wrong for a single pixel
// is contained, logged and reported on its ticket.
func (u *MatchUseCase) Run(ctx context.Context) (domain.RunReport, error) {
	report := domain.RunReport{RunID: uuid.New()}
	if !u.running.CompareAndSwap(false, true) {
		return report, domain.ErrRunInProgress
	}
	defer u.running.Store(false)

	started := u.clock.Now()
	logger := u.logger.With("run_id", report.RunID.String())
	logger.Info("match run started")

	disc, err := u.discovery.Discover(ctx)
	if err != nil {
		logger.Error("pixel discovery failed", "error", err)
		return report, fmt.Errorf("discover pixels: %w", err)
	}
	pixels := disc.Eligible(started)
	report.Discovered, report.Eligible = disc.Total, len(pixels)
	logger.Info("pixels discovered", "total", disc.Total, "returned", len(disc.Pixels), "eligible", len(pixels))
	for _, p := range pixels {
		logger.Info("eligible pixel", "pixel", p.ID, "campaign", p.Name, "start_date", p.QueryStartDate())
	}

	if len(pixels) == 0 {
		notify(ctx, logger, u.notifier, domain.NoPixels())
		logger.Error("no pixels returned by discovery")
		return report, nil
	}

	units := u.resolver.Resolve(ctx, logger, pixels)
	report.NoTicket = len(pixels) - len(units)
	for i := 0; i < report.NoTicket; i++ {
		u.metrics.Unit(metrics.OutcomeNoTicket)
	}

	agg := domain.NewRunAggregate()
	if len(units) == 0 {
		logger.Warn("no matching tickets for the pixels found")
	} else {
		var counters unitCounters
		logger.Info("match processing started", "units", len(units))
		report.Failed = u.coordinator.Run(ctx, units, func(ctx context.Context, unit domain.WorkUnit) error {
			return u.process(ctx, logger, unit, agg, &counters)
		})
		// Failures include units the coordinator recovered from a panic.
		for i := 0; i < report.Failed; i++ {
			u.metrics.Unit(metrics.OutcomeFailed)
		}
		report.Matched = int(counters.matched.Load())
		report.NoData = int(counters.noData.Load())
		logger.Info("match processing finished",
			"matched", report.Matched, "no_data", report.NoData, "failed", report.Failed)
	}

	if agg.Len() == 0 {
		logger.Warn("no results in this run, nothing archived")
	} else {
		report.Archived = u.archive(ctx, logger, u.record(report.RunID, started, units, agg))
	}

	u.metrics.RunFinished(u.clock.Since(started))
	logger.Info("match run finished")
	return report, nil
}

// Running reports whether a run is in progress.
func (u *MatchUseCase) Running() bool {
	return u.running.Load()
}

// process runs the query of one unit and reports its outcome. It returns an
// error when the unit failed so the coordinator can count it; failed units
// are added to the metrics once the coordinator returns.
func (u *MatchUseCase) process(ctx context.Context, runLogger *slog.Logger, unit domain.WorkUnit, agg *domain.RunAggregate, counters *unitCounters) error {
	if !unit.Resolved() {
		return domain.ErrNoTicket
	}
	logger := runLogger.With("pixel", unit.Pixel.ID, "ticket", unit.TicketKey)
	logger.Info("processing pixel", "campaign", unit.Pixel.Name)

	counts, runErr := u.runner.Run(ctx, logger, Query{
		Text:  u.queries(unit.Pixel),
		Label: u.queryLabel,
		Name:  unit.TicketKey + ", " + unit.Pixel.ID,
	})

	var outcome *domain.MatchOutcome
	if runErr == nil {
		o := domain.Calculate(counts)
		if o.Empty() {
			logger.Warn("match query returned only zero counts")
			counters.noData.Add(1)
			u.metrics.Unit(metrics.OutcomeNoData)
		} else {
			logRates(logger, o)
			agg.Put(unit.Pixel.ID, o)
			counters.matched.Add(1)
			u.metrics.Unit(metrics.OutcomeMatched)
			outcome = &o
		}
	}

	link := u.resolver.Link(ctx, logger, unit)
	if outcome != nil {
		u.reporter.Success(ctx, logger, link, *outcome)
	} else {
		u.reporter.Failure(ctx, logger, link)
	}
	return runErr
}

func logRates(logger *slog.Logger, o domain.MatchOutcome) {
	_, hashedOK := o.HashedRate.Value()
	_, cookieOK := o.CookieRate.Value()
	switch {
	case !hashedOK && !cookieOK:
		logger.Warn("zero maid and cookie counts")
	case !hashedOK:
		logger.Warn("zero maid counts")
	case !cookieOK:
		logger.Warn("zero cookie counts")
	default:
		logger.Info("match results created",
			"hashed_rate", o.HashedRate.String(), "cookie_rate", o.CookieRate.String(), "full_rate", o.FullRate.String())
	}
}

// record builds the persisted run from the aggregate, in discovery order.
func (u *MatchUseCase) record(id uuid.UUID, started time.Time, units []domain.WorkUnit, agg *domain.RunAggregate) domain.RunRecord {
	outcomes := agg.Snapshot()
	run := domain.RunRecord{
		ID:         id,
		Name:       u.name,
		StartedAt:  started,
		FinishedAt: u.clock.Now(),
		Results:    make([]domain.PixelResult, 0, len(outcomes)),
	}
	for _, unit := range units {
		o, ok := outcomes[unit.Pixel.ID]
		if !ok {
			continue
		}
		run.Results = append(run.Results, domain.PixelResult{
			PixelID:      unit.Pixel.ID,
			CampaignName: unit.Pixel.Name,
			TicketKey:    unit.TicketKey,
			Outcome:      o,
		})
		delete(outcomes, unit.Pixel.ID)
	}
	return run
}

// archive writes the run to every archive and reports whether at least one
// write succeeded. Write failures are logged only.
func (u *MatchUseCase) archive(ctx context.Context, logger *slog.Logger, run domain.RunRecord) bool {
	var errs []error
	saved := false
	for _, a := range u.archives {
		if err := a.Save(ctx, run); err != nil {
			errs = append(errs, err)
			continue
		}
		saved = true
	}
	if err := errors.Join(errs...); err != nil {
		logger.Error("could not archive run results", "error", err)
	}
	if saved {
		logger.Info("run results archived", "results", len(run.Results))
	}
	return saved
}
