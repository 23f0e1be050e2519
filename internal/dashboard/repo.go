package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/volume"
)

var ErrProfileNotFound = errors.New("profile not found")

type Totals struct {
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalVolume   float64 `json:"totalVolume"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// DailyVolumesSince returns the stored daily aggregates from since (inclusive), oldest first.
func (r *Repo) DailyVolumesSince(ctx context.Context, userID int, since time.Time) (_ []volume.DailyVolumeRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.dailyVolumesSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), volume
		FROM daily_volume
		WHERE user_id = $1 AND date >= $2
		ORDER BY date`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query daily volume: %w", err)
	}
	defer rows.Close()

	records := []volume.DailyVolumeRecord{}
	for rows.Next() {
		var record volume.DailyVolumeRecord
		if err := rows.Scan(&record.Date, &record.Volume); err != nil {
			return nil, fmt.Errorf("scan daily volume: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("daily volume rows: %w", err)
	}

	return records, nil
}

func (r *Repo) Totals(ctx context.Context, userID int) (_ *Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	totals := &Totals{}
	if err := r.db.QueryRow(
		ctx,
		`SELECT total_workouts, total_volume FROM profile WHERE user_id = $1`,
		userID,
	).Scan(&totals.TotalWorkouts, &totals.TotalVolume); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("select totals: %w", err)
	}

	return totals, nil
}
