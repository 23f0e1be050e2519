package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/volume"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard

type dashboardRepo interface {
	DailyVolumesSince(ctx context.Context, userID int, since time.Time) ([]volume.DailyVolumeRecord, error)
	Totals(ctx context.Context, userID int) (*Totals, error)
}

type Summary struct {
	Totals
	Range   volume.TimeRange `json:"range"`
	Buckets []volume.Bucket  `json:"buckets"`
}

type Service struct {
	repo dashboardRepo
}

func NewService(repo dashboardRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Volume returns the bucketed volume series of the range, ending today in the viewer's offset.
func (s *Service) Volume(
	ctx context.Context,
	userID int,
	tr volume.TimeRange,
	now time.Time,
	offsetMinutes int,
) (_ []volume.Bucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.volume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !tr.IsValid() {
		return nil, fmt.Errorf("%w: %q", volume.ErrUnknownTimeRange, tr)
	}

	records, err := s.repo.DailyVolumesSince(ctx, userID, lookbackStart(tr, now))
	if err != nil {
		return nil, fmt.Errorf("daily volumes: %w", err)
	}

	return volume.Bucketize(records, tr, now, offsetMinutes)
}

func (s *Service) Summary(
	ctx context.Context,
	userID int,
	tr volume.TimeRange,
	now time.Time,
	offsetMinutes int,
) (*Summary, error) {
	totals, err := s.repo.Totals(ctx, userID)
	if err != nil {
		return nil, err
	}

	buckets, err := s.Volume(ctx, userID, tr, now, offsetMinutes)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Totals:  *totals,
		Range:   tr,
		Buckets: buckets,
	}, nil
}

// lookbackStart is the oldest UTC date whose records can fall into the range.
// One extra day covers viewers whose local date is behind or ahead of UTC.
func lookbackStart(tr volume.TimeRange, now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(tr.LookbackDays() + 1))
}
