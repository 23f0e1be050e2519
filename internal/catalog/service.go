package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=catalog

const (
	predefinedCacheKey = "exercises||predefined"
	megabyte           = 1024 * 1024
)

// DefaultPredefinedTTL is how long the predefined catalog is served from cache.
const DefaultPredefinedTTL = 24 * time.Hour

type exercisesRepo interface {
	ListPredefined(ctx context.Context) ([]Exercise, error)
	ListByUser(ctx context.Context, userID int) ([]Exercise, error)
	AddUserExercise(ctx context.Context, userID int, ex NewExercise) (*Exercise, error)
}

type Service struct {
	repo          exercisesRepo
	cache         *freecache.Cache
	predefinedTTL time.Duration
}

func NewService(repo exercisesRepo, cacheSizeMB int, predefinedTTL time.Duration) *Service {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	if predefinedTTL <= 0 {
		predefinedTTL = DefaultPredefinedTTL
	}
	return &Service{
		repo:          repo,
		cache:         freecache.NewCache(cacheSizeMB * megabyte),
		predefinedTTL: predefinedTTL,
	}
}

// Predefined returns the shared exercise catalog, cached across users.
func (s *Service) Predefined(ctx context.Context) ([]Exercise, error) {
	if cached, err := s.cache.Get([]byte(predefinedCacheKey)); err == nil {
		var exercises []Exercise
		unmarshalErr := json.Unmarshal(cached, &exercises)
		if unmarshalErr == nil {
			log.Tracef("predefined exercises: cache hit, %d items", len(exercises))
			return exercises, nil
		}
		log.Errorf("predefined exercises: unmarshal cached: %s", unmarshalErr)
	}

	log.Debugf("predefined exercises: cache miss")
	exercises, err := s.repo.ListPredefined(ctx)
	if err != nil {
		return nil, err
	}

	exercisesBytes, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("predefined exercises: marshal for cache: %s", err)
		return exercises, nil
	}
	if err := s.cache.Set([]byte(predefinedCacheKey), exercisesBytes, int(s.predefinedTTL.Seconds())); err != nil {
		log.Errorf("predefined exercises: cache set: %s", err)
	}

	return exercises, nil
}

func (s *Service) InvalidatePredefined() {
	s.cache.Del([]byte(predefinedCacheKey))
}

// Exercises returns the predefined catalog followed by the user's own exercises.
func (s *Service) Exercises(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	predefined, err := s.Predefined(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predefined: %w", err)
	}

	userExercises, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user exercises: %w", err)
	}

	all := make([]Exercise, 0, len(predefined)+len(userExercises))
	all = append(all, predefined...)
	all = append(all, userExercises...)
	return all, nil
}

// Index maps every exercise visible to the user by its key.
func (s *Service) Index(ctx context.Context, userID int) (map[Key]Exercise, error) {
	exercises, err := s.Exercises(ctx, userID)
	if err != nil {
		return nil, err
	}

	index := make(map[Key]Exercise, len(exercises))
	for _, ex := range exercises {
		index[Key{Type: ex.Type, ID: ex.ID}] = ex
	}
	return index, nil
}

func (s *Service) AddUserExercise(ctx context.Context, userID int, ex NewExercise) (*Exercise, error) {
	if err := ex.normalize(); err != nil {
		return nil, err
	}
	return s.repo.AddUserExercise(ctx, userID, ex)
}
