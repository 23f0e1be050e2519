package catalog

import (
	"github.com/2beens/liftlog/internal/workout"
	"github.com/2beens/liftlog/pkg"
)

var (
	strength = workout.Capability{UsesReps: true, UsesWeight: true}
	bodyOnly = workout.Capability{UsesReps: true}
	timed    = workout.Capability{UsesDuration: true}
	cardio   = workout.Capability{UsesDuration: true, UsesDistance: true}
)

func predefined(name, primary, secondary, category string, capability workout.Capability) NewExercise {
	ex := NewExercise{
		Name:       name,
		Category:   pkg.Ptr(category),
		Capability: capability,
	}
	if primary != "" {
		ex.PrimaryMuscleGroup = pkg.Ptr(primary)
	}
	if secondary != "" {
		ex.SecondaryMuscleGroup = pkg.Ptr(secondary)
	}
	return ex
}

// DefaultPredefined is the catalog a fresh installation starts with.
var DefaultPredefined = []NewExercise{
	predefined("Bench Press", "chest", "triceps", "strength", strength),
	predefined("Incline Dumbbell Press", "chest", "shoulders", "strength", strength),
	predefined("Overhead Press", "shoulders", "triceps", "strength", strength),
	predefined("Lateral Raise", "shoulders", "", "strength", strength),
	predefined("Back Squat", "quads", "glutes", "strength", strength),
	predefined("Front Squat", "quads", "core", "strength", strength),
	predefined("Deadlift", "hamstrings", "back", "strength", strength),
	predefined("Romanian Deadlift", "hamstrings", "glutes", "strength", strength),
	predefined("Barbell Row", "back", "biceps", "strength", strength),
	predefined("Lat Pulldown", "back", "biceps", "strength", strength),
	predefined("Barbell Curl", "biceps", "", "strength", strength),
	predefined("Triceps Pushdown", "triceps", "", "strength", strength),
	predefined("Leg Press", "quads", "glutes", "strength", strength),
	predefined("Calf Raise", "calves", "", "strength", strength),
	predefined("Pull Up", "back", "biceps", "bodyweight", bodyOnly),
	predefined("Push Up", "chest", "triceps", "bodyweight", bodyOnly),
	predefined("Dip", "triceps", "chest", "bodyweight", bodyOnly),
	predefined("Plank", "core", "", "bodyweight", timed),
	predefined("Running", "", "", "cardio", cardio),
	predefined("Rowing", "back", "", "cardio", cardio),
	predefined("Cycling", "quads", "", "cardio", cardio),
}
