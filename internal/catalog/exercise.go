package catalog

import (
	"errors"
	"strings"

	"github.com/2beens/liftlog/internal/workout"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrInvalidExercise  = errors.New("invalid exercise")
	ErrExerciseExists   = errors.New("exercise with that name already exists")
)

type Exercise struct {
	ID                   int                  `json:"id"`
	Type                 workout.ExerciseType `json:"exercise_type"`
	Name                 string               `json:"name"`
	PrimaryMuscleGroup   *string              `json:"primary_muscle_group"`
	SecondaryMuscleGroup *string              `json:"secondary_muscle_group"`
	Category             *string              `json:"category"`
	Capability           workout.Capability   `json:"capability"`
}

func (e Exercise) Ref() workout.ExerciseRef {
	return workout.ExerciseRef{
		Type:       e.Type,
		ID:         e.ID,
		Name:       e.Name,
		Capability: e.Capability,
	}
}

// Key identifies an exercise across the predefined and the user catalog.
type Key struct {
	Type workout.ExerciseType
	ID   int
}

func KeyOf(ref workout.ExerciseRef) Key {
	return Key{Type: ref.Type, ID: ref.ID}
}

// NewExercise is a user authored exercise definition.
type NewExercise struct {
	Name                 string             `json:"name"`
	PrimaryMuscleGroup   *string            `json:"primary_muscle_group"`
	SecondaryMuscleGroup *string            `json:"secondary_muscle_group"`
	Category             *string            `json:"category"`
	Capability           workout.Capability `json:"capability"`
}

func (e *NewExercise) normalize() error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" || len(e.Name) > 100 {
		return ErrInvalidExercise
	}
	return nil
}

// flag turns a nullable stored capability flag into a bool, missing counts as false.
func flag(b *bool) bool {
	return b != nil && *b
}
