package workout

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("exercise index out of range")

// Draft is a workout being built before it is saved.
// Exercise order is always dense, starting from 1.
type Draft struct {
	Exercises []ExerciseEntry `json:"exercises"`
}

func NewDraft() *Draft {
	return &Draft{
		Exercises: []ExerciseEntry{},
	}
}

// AddExercises appends exercises, each with a single initial set.
func (d *Draft) AddExercises(refs ...ExerciseRef) {
	for _, ref := range refs {
		d.Exercises = append(d.Exercises, ExerciseEntry{
			Exercise: ref,
			Order:    len(d.Exercises) + 1,
			Sets:     []SetEntry{InitialSet(ref.Capability)},
		})
	}
}

func (d *Draft) RemoveExercise(index int) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}

	exercises := make([]ExerciseEntry, 0, len(d.Exercises)-1)
	exercises = append(exercises, d.Exercises[:index]...)
	exercises = append(exercises, d.Exercises[index+1:]...)
	for i := range exercises {
		exercises[i].Order = i + 1
	}
	d.Exercises = exercises

	return nil
}

// UpdateSets replaces the sets of one exercise, keeping only the metrics it records.
func (d *Draft) UpdateSets(index int, sets []SetEntry) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}

	capability := d.Exercises[index].Exercise.Capability
	updated := make([]SetEntry, len(sets))
	for i, set := range sets {
		if err := CheckMetrics(set); err != nil {
			return err
		}
		updated[i] = TrimToCapability(set, capability)
	}
	d.Exercises[index].Sets = updated

	return nil
}

func (d *Draft) SetEffortLevel(index int, effort *EffortLevel) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.Exercises[index].EffortLevel = effort
	return nil
}

func (d *Draft) CanSave() bool {
	return IsWorkoutValid(d.Exercises)
}

func (d *Draft) Clear() {
	d.Exercises = []ExerciseEntry{}
}

func (d *Draft) IsEmpty() bool {
	return len(d.Exercises) == 0
}

func (d *Draft) checkIndex(index int) error {
	if index < 0 || index >= len(d.Exercises) {
		return fmt.Errorf("%w: %d (exercises: %d)", ErrIndexOutOfRange, index, len(d.Exercises))
	}
	return nil
}

// InitialSet is set number 1 with zero for every metric the capability uses.
func InitialSet(capability Capability) SetEntry {
	set := SetEntry{SetNumber: 1}
	if capability.UsesReps {
		set.Reps = zero()
	}
	if capability.UsesWeight {
		set.WeightKg = zero()
	}
	if capability.UsesDuration {
		set.DurationSeconds = zero()
	}
	if capability.UsesDistance {
		set.DistanceMeters = zero()
	}
	return set
}

func zero() *float64 {
	v := 0.0
	return &v
}
