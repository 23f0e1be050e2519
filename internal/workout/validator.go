package workout

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidMetric = errors.New("invalid set metric")

// CheckMetrics rejects negative or non-finite metric values.
func CheckMetrics(set SetEntry) error {
	metrics := []struct {
		name  string
		value *float64
	}{
		{"reps", set.Reps},
		{"weight_kg", set.WeightKg},
		{"duration_seconds", set.DurationSeconds},
		{"distance_meters", set.DistanceMeters},
	}
	for _, m := range metrics {
		if m.value == nil {
			continue
		}
		v := *m.value
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: set %d %s %v", ErrInvalidMetric, set.SetNumber, m.name, v)
		}
	}
	return nil
}

// TrimToCapability drops every metric the exercise does not record.
func TrimToCapability(set SetEntry, capability Capability) SetEntry {
	if !capability.UsesReps {
		set.Reps = nil
	}
	if !capability.UsesWeight {
		set.WeightKg = nil
	}
	if !capability.UsesDuration {
		set.DurationSeconds = nil
	}
	if !capability.UsesDistance {
		set.DistanceMeters = nil
	}
	return set
}

// IsSetValid reports whether a set carries enough data for the capability of its exercise.
// With no required metrics any set is valid, with a single required metric that one has to
// be positive, and with several required metrics all of them have to be positive.
func IsSetValid(set SetEntry, capability Capability) bool {
	required, satisfied := 0, 0
	check := func(uses bool, value *float64) {
		if !uses {
			return
		}
		required++
		if positive(value) {
			satisfied++
		}
	}

	check(capability.UsesReps, set.Reps)
	check(capability.UsesWeight, set.WeightKg)
	check(capability.UsesDuration, set.DurationSeconds)
	check(capability.UsesDistance, set.DistanceMeters)

	switch {
	case required == 0:
		return true
	case required == 1:
		return satisfied >= 1
	default:
		return satisfied == required
	}
}

// IsWorkoutValid is true when at least one exercise holds at least one valid set.
func IsWorkoutValid(exercises []ExerciseEntry) bool {
	for _, e := range exercises {
		for _, s := range e.Sets {
			if IsSetValid(s, e.Exercise.Capability) {
				return true
			}
		}
	}
	return false
}

// FilterForSave keeps only valid sets, trimmed to the exercise capability, and drops
// exercises left without any. Order and set numbers are preserved, the input is never modified.
func FilterForSave(exercises []ExerciseEntry) []ExerciseEntry {
	filtered := make([]ExerciseEntry, 0, len(exercises))
	for _, e := range exercises {
		var sets []SetEntry
		for _, s := range e.Sets {
			if IsSetValid(s, e.Exercise.Capability) {
				sets = append(sets, TrimToCapability(s, e.Exercise.Capability))
			}
		}
		if len(sets) == 0 {
			continue
		}

		kept := e
		kept.Sets = sets
		filtered = append(filtered, kept)
	}
	return filtered
}

// DroppedSets counts the sets FilterForSave would discard.
func DroppedSets(exercises []ExerciseEntry) int {
	dropped := 0
	for _, e := range exercises {
		for _, s := range e.Sets {
			if !IsSetValid(s, e.Exercise.Capability) {
				dropped++
			}
		}
	}
	return dropped
}
