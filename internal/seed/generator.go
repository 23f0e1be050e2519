package seed

import (
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/liftlog/internal/auth"
	"github.com/2beens/liftlog/internal/catalog"
	"github.com/2beens/liftlog/internal/workout"
	"github.com/2beens/liftlog/internal/workouts"
	"github.com/2beens/liftlog/pkg"
)

var efforts = []string{
	string(workout.EffortEasy),
	string(workout.EffortModerate),
	string(workout.EffortHard),
	string(workout.EffortMax),
}

// Generator produces random but plausible demo data. The same seed gives the same data.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
	}
}

func (g *Generator) Credentials() auth.Credentials {
	return auth.Credentials{
		Username: "demo_" + usernameSafe(g.faker.Username()),
		Password: g.faker.Password(true, true, true, false, false, 16),
	}
}

// Trains reports whether the demo user trains on a given day.
func (g *Generator) Trains() bool {
	return g.faker.Number(1, 100) <= 45
}

// Workout picks 2 to 5 distinct exercises and fills every set with the metrics
// the exercise records, so the whole workout passes validation.
func (g *Generator) Workout(date time.Time, exercises []catalog.Exercise) workouts.SaveRequest {
	req := workouts.SaveRequest{
		WorkoutDate: pkg.Ptr(date.Format("2006-01-02")),
	}
	if len(exercises) == 0 {
		return req
	}

	count := g.faker.Number(2, 5)
	if count > len(exercises) {
		count = len(exercises)
	}

	picked := make(map[int]bool, count)
	for len(req.Exercises) < count {
		i := g.faker.Number(0, len(exercises)-1)
		if picked[i] {
			continue
		}
		picked[i] = true

		ex := exercises[i]
		effort := workout.EffortLevel(g.faker.RandomString(efforts))
		entry := workout.ExerciseEntry{
			Exercise:    ex.Ref(),
			Order:       len(req.Exercises) + 1,
			EffortLevel: &effort,
		}
		setsCount := g.faker.Number(2, 5)
		for setNumber := 1; setNumber <= setsCount; setNumber++ {
			entry.Sets = append(entry.Sets, g.set(setNumber, ex.Capability))
		}
		req.Exercises = append(req.Exercises, entry)
	}

	return req
}

func (g *Generator) set(setNumber int, capability workout.Capability) workout.SetEntry {
	set := workout.SetEntry{SetNumber: setNumber}
	if capability.UsesReps {
		set.Reps = pkg.Ptr(float64(g.faker.Number(3, 15)))
	}
	if capability.UsesWeight {
		// plates go in 2.5 kg steps
		set.WeightKg = pkg.Ptr(math.Round(g.faker.Float64Range(20, 140)/2.5) * 2.5)
	}
	if capability.UsesDuration {
		set.DurationSeconds = pkg.Ptr(float64(g.faker.Number(30, 1800)))
	}
	if capability.UsesDistance {
		set.DistanceMeters = pkg.Ptr(float64(g.faker.Number(5, 100) * 100))
	}
	return set
}

// usernameSafe drops characters that are not allowed in usernames.
func usernameSafe(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	return name
}
