package workouts

import (
	"errors"
	"time"

	"github.com/2beens/liftlog/internal/workout"
)

var (
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrWorkoutInvalid     = errors.New("workout has no valid sets")
	ErrUnknownExercise    = errors.New("unknown exercise")
	ErrInvalidSaveRequest = errors.New("invalid save request")
	ErrInvalidPage        = errors.New("invalid page or size")
)

const (
	workoutDateLayout = "2006-01-02"
	localTimeLayout   = "03:04 PM"
	maxPageSize       = 100
)

// SaveRequest is a workout as submitted by the client.
// WorkoutDate is optional, it defaults to today in UTC.
type SaveRequest struct {
	WorkoutDate *string                 `json:"workout_date"`
	Exercises   []workout.ExerciseEntry `json:"exercises"`
}

type SaveResult struct {
	ID          int     `json:"id"`
	TotalVolume float64 `json:"totalVolume"`
	DroppedSets int     `json:"droppedSets"`
}

// Workout is a persisted workout with its exercises ordered by "order"
// and sets ordered by set number.
type Workout struct {
	ID          int                     `json:"id"`
	UserID      int                     `json:"user_id"`
	WorkoutDate time.Time               `json:"workout_date"`
	CreatedAt   time.Time               `json:"created_at"`
	Exercises   []workout.ExerciseEntry `json:"exercises"`
}

// View is a workout as shown in the history, dated in the viewer's offset.
type View struct {
	ID          int                     `json:"id"`
	WorkoutDate string                  `json:"workout_date"`
	Date        string                  `json:"date"`
	Time        string                  `json:"time"`
	TotalVolume float64                 `json:"totalVolume"`
	Exercises   []workout.ExerciseEntry `json:"exercises"`
}

type Page struct {
	Workouts []View `json:"workouts"`
	Page     int    `json:"page"`
	Size     int    `json:"size"`
	Total    int    `json:"total"`
}

func newView(w Workout, offsetMinutes int) View {
	loc := time.FixedZone("", offsetMinutes*60)
	created := w.CreatedAt.In(loc)

	exercises := w.Exercises
	if exercises == nil {
		exercises = []workout.ExerciseEntry{}
	}

	return View{
		ID:          w.ID,
		WorkoutDate: w.WorkoutDate.Format(workoutDateLayout),
		Date:        created.Format(workoutDateLayout),
		Time:        created.Format(localTimeLayout),
		TotalVolume: workout.TotalVolume(w.Exercises),
		Exercises:   exercises,
	}
}
