package workouts

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/catalog"
	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workout"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts

type workoutsRepo interface {
	Save(ctx context.Context, userID int, workoutDate time.Time, exercises []workout.ExerciseEntry) (int, error)
	Delete(ctx context.Context, userID, workoutID int) error
	Count(ctx context.Context, userID int) (int, error)
	List(ctx context.Context, userID, limit, offset int) ([]Workout, error)
}

type exerciseIndexer interface {
	Index(ctx context.Context, userID int) (map[catalog.Key]catalog.Exercise, error)
}

type Service struct {
	repo           workoutsRepo
	exercises      exerciseIndexer
	metricsManager *metrics.Manager
}

func NewService(repo workoutsRepo, exercises exerciseIndexer, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		exercises:      exercises,
		metricsManager: metricsManager,
	}
}

// Save validates the workout against the catalog capabilities of its exercises
// and stores only its valid sets.
func (s *Service) Save(ctx context.Context, userID int, req SaveRequest, now time.Time) (_ *SaveResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutDate, err := resolveWorkoutDate(req.WorkoutDate, now)
	if err != nil {
		return nil, err
	}

	exercises, err := s.resolveExercises(ctx, userID, req.Exercises)
	if err != nil {
		return nil, err
	}

	if !workout.IsWorkoutValid(exercises) {
		return nil, ErrWorkoutInvalid
	}

	toSave := workout.FilterForSave(exercises)
	dropped := workout.DroppedSets(exercises)

	workoutID, err := s.repo.Save(ctx, userID, workoutDate, toSave)
	if err != nil {
		return nil, fmt.Errorf("save workout: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsSaved.Inc()
		s.metricsManager.CounterSetsDropped.Add(float64(dropped))
	}
	log.Debugf("workout [%d] saved for user [%d], dropped sets: %d", workoutID, userID, dropped)

	return &SaveResult{
		ID:          workoutID,
		TotalVolume: workout.TotalVolume(toSave),
		DroppedSets: dropped,
	}, nil
}

// resolveExercises replaces client sent capabilities with the catalog ones, drops set
// metrics those capabilities do not record, and checks order, effort levels and values.
func (s *Service) resolveExercises(ctx context.Context, userID int, entries []workout.ExerciseEntry) ([]workout.ExerciseEntry, error) {
	if len(entries) == 0 {
		return nil, ErrWorkoutInvalid
	}

	index, err := s.exercises.Index(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("exercise index: %w", err)
	}

	resolved := make([]workout.ExerciseEntry, len(entries))
	for i, e := range entries {
		if !e.Exercise.Type.IsValid() {
			return nil, fmt.Errorf("%w: exercise type %q", ErrInvalidSaveRequest, e.Exercise.Type)
		}
		if e.EffortLevel != nil && !e.EffortLevel.IsValid() {
			return nil, fmt.Errorf("%w: effort level %q", ErrInvalidSaveRequest, *e.EffortLevel)
		}

		ex, ok := index[catalog.KeyOf(e.Exercise)]
		if !ok {
			return nil, fmt.Errorf("%w: %s/%d", ErrUnknownExercise, e.Exercise.Type, e.Exercise.ID)
		}

		entry := e
		entry.Exercise = ex.Ref()
		entry.Sets = make([]workout.SetEntry, len(e.Sets))
		for j, set := range e.Sets {
			if err := workout.CheckMetrics(set); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidSaveRequest, err)
			}
			entry.Sets[j] = workout.TrimToCapability(set, entry.Exercise.Capability)
		}
		if entry.Order <= 0 {
			entry.Order = i + 1
		}
		resolved[i] = entry
	}

	return resolved, nil
}

func resolveWorkoutDate(date *string, now time.Time) (time.Time, error) {
	if date == nil || *date == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	workoutDate, err := time.Parse(workoutDateLayout, *date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: workout date %q", ErrInvalidSaveRequest, *date)
	}
	return workoutDate, nil
}

func (s *Service) List(ctx context.Context, userID, page, size, offsetMinutes int) (_ *Page, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if page < 1 || size < 1 || size > maxPageSize {
		return nil, fmt.Errorf("%w: page %d, size %d", ErrInvalidPage, page, size)
	}

	total, err := s.repo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	workouts, err := s.repo.List(ctx, userID, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(workouts))
	for _, w := range workouts {
		views = append(views, newView(w, offsetMinutes))
	}

	return &Page{
		Workouts: views,
		Page:     page,
		Size:     size,
		Total:    total,
	}, nil
}

func (s *Service) Delete(ctx context.Context, userID, workoutID int) error {
	if err := s.repo.Delete(ctx, userID, workoutID); err != nil {
		return err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsDeleted.Inc()
	}
	log.Debugf("workout [%d] of user [%d] deleted", workoutID, userID)

	return nil
}
