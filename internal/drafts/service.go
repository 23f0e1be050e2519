package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/catalog"
	"github.com/2beens/liftlog/internal/workout"
	"github.com/2beens/liftlog/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=drafts

var ErrUnknownExercise = errors.New("unknown exercise")

type draftStore interface {
	Get(ctx context.Context, userID int) (*workout.Draft, error)
	Put(ctx context.Context, userID int, draft *workout.Draft) error
	Clear(ctx context.Context, userID int) error
}

type exerciseIndexer interface {
	Index(ctx context.Context, userID int) (map[catalog.Key]catalog.Exercise, error)
}

type workoutSaver interface {
	Save(ctx context.Context, userID int, req workouts.SaveRequest, now time.Time) (*workouts.SaveResult, error)
}

// Response is the draft as returned after every read or change.
type Response struct {
	Exercises []workout.ExerciseEntry `json:"exercises"`
	CanSave   bool                    `json:"canSave"`
}

type SaveResponse struct {
	Workout *workouts.SaveResult `json:"workout"`
	Draft   Response             `json:"draft"`
}

func newResponse(draft *workout.Draft) *Response {
	return &Response{
		Exercises: draft.Exercises,
		CanSave:   draft.CanSave(),
	}
}

type Service struct {
	store     draftStore
	exercises exerciseIndexer
	saver     workoutSaver
}

func NewService(store draftStore, exercises exerciseIndexer, saver workoutSaver) *Service {
	return &Service{
		store:     store,
		exercises: exercises,
		saver:     saver,
	}
}

func (s *Service) Get(ctx context.Context, userID int) (*Response, error) {
	draft, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newResponse(draft), nil
}

// AddExercises appends catalog exercises to the draft, each with one initial set.
func (s *Service) AddExercises(ctx context.Context, userID int, keys []catalog.Key) (*Response, error) {
	index, err := s.exercises.Index(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("exercise index: %w", err)
	}

	refs := make([]workout.ExerciseRef, 0, len(keys))
	for _, key := range keys {
		ex, ok := index[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s/%d", ErrUnknownExercise, key.Type, key.ID)
		}
		refs = append(refs, ex.Ref())
	}

	return s.update(ctx, userID, func(draft *workout.Draft) error {
		draft.AddExercises(refs...)
		return nil
	})
}

func (s *Service) RemoveExercise(ctx context.Context, userID, index int) (*Response, error) {
	return s.update(ctx, userID, func(draft *workout.Draft) error {
		return draft.RemoveExercise(index)
	})
}

// UpdateSets replaces the sets of one exercise, and its effort level when given.
func (s *Service) UpdateSets(
	ctx context.Context,
	userID, index int,
	sets []workout.SetEntry,
	effort *workout.EffortLevel,
) (*Response, error) {
	if effort != nil && !effort.IsValid() {
		return nil, fmt.Errorf("%w: effort level %q", workouts.ErrInvalidSaveRequest, *effort)
	}

	return s.update(ctx, userID, func(draft *workout.Draft) error {
		if err := draft.UpdateSets(index, sets); err != nil {
			return err
		}
		if effort != nil {
			return draft.SetEffortLevel(index, effort)
		}
		return nil
	})
}

func (s *Service) Clear(ctx context.Context, userID int) (*Response, error) {
	if err := s.store.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return newResponse(workout.NewDraft()), nil
}

// Save hands the whole draft to the workouts service, which drops the invalid sets.
// The draft is cleared only once the workout is stored, a failed save leaves it as it was.
func (s *Service) Save(ctx context.Context, userID int, now time.Time) (*SaveResponse, error) {
	draft, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !draft.CanSave() {
		return nil, workouts.ErrWorkoutInvalid
	}

	result, err := s.saver.Save(ctx, userID, workouts.SaveRequest{Exercises: draft.Exercises}, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.Clear(ctx, userID); err != nil {
		// the workout is stored, a stale draft only expires later
		log.Errorf("clear draft of user [%d] after save: %s", userID, err)
	}

	return &SaveResponse{
		Workout: result,
		Draft:   *newResponse(workout.NewDraft()),
	}, nil
}

func (s *Service) update(ctx context.Context, userID int, change func(draft *workout.Draft) error) (*Response, error) {
	draft, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := change(draft); err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, userID, draft); err != nil {
		return nil, err
	}

	return newResponse(draft), nil
}
