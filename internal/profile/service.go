package profile

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile

type profileRepo interface {
	Get(ctx context.Context, userID int) (*Profile, error)
	Update(ctx context.Context, userID int, u Update) error
}

type Service struct {
	repo profileRepo
}

func NewService(repo profileRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Get(ctx context.Context, userID int) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.WeightKg != nil {
		p.DisplayWeight = FormatWeight(*p.WeightKg, p.UnitPreference, 1)
	}
	return p, nil
}

// Update validates and stores the profile, returning the stored result.
func (s *Service) Update(ctx context.Context, userID int, u Update, now time.Time) (*Profile, error) {
	if err := u.Validate(now); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, userID, u); err != nil {
		return nil, err
	}
	log.Debugf("profile of user [%d] updated", userID)

	return s.Get(ctx, userID)
}
