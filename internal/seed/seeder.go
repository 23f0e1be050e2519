package seed

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/catalog"
	"github.com/2beens/liftlog/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=seeder_mocks_test.go -package=seed

type predefinedAdder interface {
	AddPredefined(ctx context.Context, ex catalog.NewExercise) (bool, error)
}

type userRegistrar interface {
	Register(ctx context.Context, credentials auth.Credentials) (*auth.User, error)
}

type exercisesLister interface {
	Exercises(ctx context.Context, userID int) ([]catalog.Exercise, error)
}

type workoutSaver interface {
	Save(ctx context.Context, userID int, req workouts.SaveRequest, now time.Time) (*workouts.SaveResult, error)
}

type Seeder struct {
	generator  *Generator
	predefined predefinedAdder
	users      userRegistrar
	exercises  exercisesLister
	workouts   workoutSaver
}

func NewSeeder(
	generator *Generator,
	predefined predefinedAdder,
	users userRegistrar,
	exercises exercisesLister,
	saver workoutSaver,
) *Seeder {
	return &Seeder{
		generator:  generator,
		predefined: predefined,
		users:      users,
		exercises:  exercises,
		workouts:   saver,
	}
}

// SeedCatalog adds the missing predefined exercises and returns how many were added.
func (s *Seeder) SeedCatalog(ctx context.Context, exercises []catalog.NewExercise) (int, error) {
	added := 0
	for _, ex := range exercises {
		ok, err := s.predefined.AddPredefined(ctx, ex)
		if err != nil {
			return added, fmt.Errorf("add %s: %w", ex.Name, err)
		}
		if ok {
			added++
		}
	}
	log.Debugf("seed: %d predefined exercises added", added)
	return added, nil
}

type DemoUser struct {
	Credentials auth.Credentials
	UserID      int
	Workouts    int
}

// SeedDemoUser registers a random user and saves workouts on random days of the last days before now.
func (s *Seeder) SeedDemoUser(ctx context.Context, days int, now time.Time) (*DemoUser, error) {
	credentials := s.generator.Credentials()
	user, err := s.users.Register(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("register demo user: %w", err)
	}

	exercises, err := s.exercises.Exercises(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("no exercises to build workouts from, seed the catalog first")
	}

	demo := &DemoUser{
		Credentials: credentials,
		UserID:      user.ID,
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for d := days - 1; d >= 0; d-- {
		if !s.generator.Trains() {
			continue
		}

		date := today.AddDate(0, 0, -d)
		if _, err := s.workouts.Save(ctx, user.ID, s.generator.Workout(date, exercises), now); err != nil {
			return demo, fmt.Errorf("save workout on %s: %w", date.Format("2006-01-02"), err)
		}
		demo.Workouts++
	}

	log.Debugf("seed: demo user %s [%d] with %d workouts", credentials.Username, user.ID, demo.Workouts)
	return demo, nil
}
