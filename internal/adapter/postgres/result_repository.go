package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pixel-match/internal/core/domain"
)

// ResultRepository implements port.ResultRepository using pgxpool for
// PostgreSQL.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository returns a new repository instance.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

var resultColumns = []string{
	"run_id", "pixel_id", "campaign_name", "ticket_key",
	"hashed_chpck", "hashed_hhid", "unhashed_chpck", "unhashed_hhid",
	"cookie_chpck", "cookie_hhid", "total_chpck", "total_hhid",
	"match_rate_hashes", "match_rate_cookies", "match_rate_full",
}

const selectResults = `
        SELECT
            m.pixel_id,
            m.campaign_name,
            m.ticket_key,
            m.hashed_chpck,
            m.hashed_hhid,
            m.unhashed_chpck,
            m.unhashed_hhid,
            m.cookie_chpck,
            m.cookie_hhid,
            m.total_chpck,
            m.total_hhid,
            m.match_rate_hashes,
            m.match_rate_cookies,
            m.match_rate_full
        FROM match_results m
        JOIN match_runs r ON r.id = m.run_id`

// Save stores the run and all of its results in one transaction.
func (r *ResultRepository) Save(ctx context.Context, run domain.RunRecord) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO match_runs (id, name, started_at, finished_at) VALUES ($1,$2,$3,$4)`,
		run.ID, run.Name, run.StartedAt, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"match_results"}, resultColumns,
		pgx.CopyFromSlice(len(run.Results), func(i int) ([]any, error) {
			res := run.Results[i]
			o := res.Outcome
			return []any{
				run.ID, res.PixelID, res.CampaignName, res.TicketKey,
				o.HashedCounted, o.HashedMatched, o.UnhashedCounted, o.UnhashedMatched,
				o.CookieCounted, o.CookieMatched, o.TotalCounted, o.TotalMatched,
				rateValue(o.HashedRate), rateValue(o.CookieRate), rateValue(o.FullRate),
			}, nil
		}))
	if err != nil {
		return fmt.Errorf("insert results of run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns the most recent runs with their result counts.
func (r *ResultRepository) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT r.id, r.name, r.started_at, r.finished_at, count(m.pixel_id)
        FROM match_runs r
        LEFT JOIN match_results m ON m.run_id = r.id
        GROUP BY r.id
        ORDER BY r.started_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.RunSummary])
}

// RunResults returns the results of a run in pixel order. Unknown runs
// yield a nil slice.
func (r *ResultRepository) RunResults(ctx context.Context, runID uuid.UUID) ([]domain.PixelResult, error) {
	rows, err := r.pool.Query(ctx, selectResults+` WHERE m.run_id = $1 ORDER BY m.pixel_id`, runID)
	if err != nil {
		return nil, err
	}
	results, err := pgx.CollectRows(rows, scanResult)
	if err != nil || len(results) > 0 {
		return results, err
	}

	var exists bool
	err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM match_runs WHERE id = $1)`, runID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return []domain.PixelResult{}, nil
}

// PixelHistory returns the stored results of a pixel, newest run first.
func (r *ResultRepository) PixelHistory(ctx context.Context, pixelID string, limit int) ([]domain.PixelResult, error) {
	rows, err := r.pool.Query(ctx, selectResults+` WHERE m.pixel_id = $1 ORDER BY r.started_at DESC LIMIT $2`, pixelID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanResult)
}

func scanResult(row pgx.CollectableRow) (domain.PixelResult, error) {
	var (
		res                   domain.PixelResult
		hashed, cookie, total *float64
	)
	o := &res.Outcome
	err := row.Scan(
		&res.PixelID,
		&res.CampaignName,
		&res.TicketKey,
		&o.HashedCounted,
		&o.HashedMatched,
		&o.UnhashedCounted,
		&o.UnhashedMatched,
		&o.CookieCounted,
		&o.CookieMatched,
		&o.TotalCounted,
		&o.TotalMatched,
		&hashed,
		&cookie,
		&total,
	)
	if err != nil {
		return res, err
	}
	o.HashedRate, o.CookieRate, o.FullRate = rateFrom(hashed), rateFrom(cookie), rateFrom(total)
	return res, nil
}

// rateValue maps a rate onto a nullable column value.
func rateValue(r domain.Rate) *float64 {
	v, ok := r.Value()
	if !ok {
		return nil
	}
	return &v
}

func rateFrom(v *float64) domain.Rate {
	if v == nil {
		return domain.NotComputable
	}
	return domain.Computed(*v)
}

