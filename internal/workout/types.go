package workout

type ExerciseType string

const (
	ExerciseTypePredefined ExerciseType = "predefined"
	ExerciseTypeUser       ExerciseType = "user"
)

func (t ExerciseType) IsValid() bool {
	return t == ExerciseTypePredefined || t == ExerciseTypeUser
}

type EffortLevel string

const (
	EffortEasy     EffortLevel = "easy"
	EffortModerate EffortLevel = "moderate"
	EffortHard     EffortLevel = "hard"
	EffortMax      EffortLevel = "max"
)

func (e EffortLevel) IsValid() bool {
	switch e {
	case EffortEasy, EffortModerate, EffortHard, EffortMax:
		return true
	default:
		return false
	}
}

// Capability tells which of the four set metrics an exercise records.
// Flags missing in the stored exercise definition are treated as false.
type Capability struct {
	UsesReps     bool `json:"uses_reps"`
	UsesWeight   bool `json:"uses_weight"`
	UsesDuration bool `json:"uses_duration"`
	UsesDistance bool `json:"uses_distance"`
}

// ExerciseRef identifies an exercise from either the predefined or the user catalog.
type ExerciseRef struct {
	Type       ExerciseType `json:"exercise_type"`
	ID         int          `json:"exercise_id"`
	Name       string       `json:"name,omitempty"`
	Capability Capability   `json:"capability"`
}

// SetEntry holds one set. A nil metric is absent and counts as zero.
type SetEntry struct {
	SetNumber       int      `json:"set_number"`
	Reps            *float64 `json:"reps"`
	WeightKg        *float64 `json:"weight_kg"`
	DurationSeconds *float64 `json:"duration_seconds"`
	DistanceMeters  *float64 `json:"distance_meters"`
}

// Volume is reps times weight, absent metrics counting as zero.
func (s SetEntry) Volume() float64 {
	return valueOf(s.Reps) * valueOf(s.WeightKg)
}

type ExerciseEntry struct {
	Exercise    ExerciseRef  `json:"exercise"`
	Order       int          `json:"order"`
	EffortLevel *EffortLevel `json:"effort_level"`
	Sets        []SetEntry   `json:"sets"`
}

func (e ExerciseEntry) Volume() float64 {
	total := 0.0
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

func TotalVolume(exercises []ExerciseEntry) float64 {
	total := 0.0
	for _, e := range exercises {
		total += e.Volume()
	}
	return total
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}
