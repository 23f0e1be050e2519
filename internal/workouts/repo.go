package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workout"
	"github.com/2beens/liftlog/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save stores the workout, its exercises and sets, and adds its volume to the
// daily and profile aggregates. Everything happens in one transaction.
func (r *Repo) Save(
	ctx context.Context,
	userID int,
	workoutDate time.Time,
	exercises []workout.ExerciseEntry,
) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return -1, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var workoutID int
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO workout (user_id, workout_date) VALUES ($1, $2) RETURNING id`,
		userID, workoutDate,
	).Scan(&workoutID); err != nil {
		return -1, fmt.Errorf("insert workout: %w", err)
	}

	for _, e := range exercises {
		if err := insertExercise(ctx, tx, workoutID, e); err != nil {
			return -1, err
		}
	}

	volume := workout.TotalVolume(exercises)
	if _, err := tx.Exec(
		ctx,
		`INSERT INTO daily_volume (user_id, date, volume) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET volume = daily_volume.volume + EXCLUDED.volume`,
		userID, workoutDate, volume,
	); err != nil {
		return -1, fmt.Errorf("upsert daily volume: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE profile
		SET total_workouts = total_workouts + 1, total_volume = total_volume + $2, updated_at = now()
		WHERE user_id = $1`,
		userID, volume,
	); err != nil {
		return -1, fmt.Errorf("update profile totals: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return -1, fmt.Errorf("commit: %w", err)
	}

	return workoutID, nil
}

func insertExercise(ctx context.Context, tx pgx.Tx, workoutID int, e workout.ExerciseEntry) error {
	var predefinedID, userExerciseID *int
	switch e.Exercise.Type {
	case workout.ExerciseTypePredefined:
		predefinedID = &e.Exercise.ID
	case workout.ExerciseTypeUser:
		userExerciseID = &e.Exercise.ID
	default:
		return fmt.Errorf("%w: type %q", ErrUnknownExercise, e.Exercise.Type)
	}

	var effort *string
	if e.EffortLevel != nil {
		s := string(*e.EffortLevel)
		effort = &s
	}

	var workoutExerciseID int
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO workout_exercise (workout_id, exercise_type, predefined_exercise_id, user_exercise_id, "order", effort_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		workoutID, string(e.Exercise.Type), predefinedID, userExerciseID, e.Order, effort,
	).Scan(&workoutExerciseID); err != nil {
		return exerciseInsertError(e.Exercise, err)
	}

	batch := &pgx.Batch{}
	for _, s := range e.Sets {
		batch.Queue(
			`INSERT INTO workout_set (workout_exercise_id, set_number, reps, weight_kg, duration_seconds, distance_meters)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			workoutExerciseID, s.SetNumber, s.Reps, s.WeightKg, s.DurationSeconds, s.DistanceMeters,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert sets: %w", err)
	}

	return nil
}

// Delete removes the user's workout and subtracts its volume from the aggregates.
func (r *Repo) Delete(ctx context.Context, userID, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var workoutDate time.Time
	if err := tx.QueryRow(
		ctx,
		`SELECT workout_date FROM workout WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		workoutID, userID,
	).Scan(&workoutDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWorkoutNotFound
		}
		return fmt.Errorf("select workout: %w", err)
	}

	var volume float64
	if err := tx.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(COALESCE(s.reps, 0) * COALESCE(s.weight_kg, 0)), 0)
		FROM workout_set s
		JOIN workout_exercise we ON we.id = s.workout_exercise_id
		WHERE we.workout_id = $1`,
		workoutID,
	).Scan(&volume); err != nil {
		return fmt.Errorf("sum workout volume: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM workout WHERE id = $1`, workoutID); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE daily_volume SET volume = GREATEST(volume - $3, 0) WHERE user_id = $1 AND date = $2`,
		userID, workoutDate, volume,
	); err != nil {
		return fmt.Errorf("update daily volume: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`UPDATE profile
		SET total_workouts = GREATEST(total_workouts - 1, 0),
			total_volume = GREATEST(total_volume - $2, 0),
			updated_at = now()
		WHERE user_id = $1`,
		userID, volume,
	); err != nil {
		return fmt.Errorf("update profile totals: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (r *Repo) Count(ctx context.Context, userID int) (int, error) {
	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workout WHERE user_id = $1`,
		userID,
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count workouts: %w", err)
	}
	return count, nil
}

// List returns a page of the user's workouts, newest first.
func (r *Repo) List(ctx context.Context, userID, limit, offset int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.loadWorkouts(
		ctx,
		`SELECT id, user_id, workout_date, created_at
		FROM workout
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
}

// ListCreatedSince returns workouts of all users created after since, oldest first.
func (r *Repo) ListCreatedSince(ctx context.Context, since time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "repo.workouts.listCreatedSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.loadWorkouts(
		ctx,
		`SELECT id, user_id, workout_date, created_at
		FROM workout
		WHERE created_at > $1
		ORDER BY created_at, id`,
		since,
	)
}

func (r *Repo) loadWorkouts(ctx context.Context, query string, args ...any) ([]Workout, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}

	var (
		workouts   []Workout
		workoutIDs []int
	)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.WorkoutDate, &w.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
		workoutIDs = append(workoutIDs, w.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts rows: %w", err)
	}

	if len(workouts) == 0 {
		return []Workout{}, nil
	}

	exercisesByWorkout, err := r.loadExercises(ctx, workoutIDs)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		workouts[i].Exercises = exercisesByWorkout[workouts[i].ID]
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []workout.ExerciseEntry{}
		}
	}

	return workouts, nil
}

func (r *Repo) loadExercises(ctx context.Context, workoutIDs []int) (map[int][]workout.ExerciseEntry, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT we.id, we.workout_id, we.exercise_type,
			COALESCE(we.predefined_exercise_id, we.user_exercise_id),
			COALESCE(e.name, ue.name, ''),
			COALESCE(e.uses_reps, ue.uses_reps, FALSE),
			COALESCE(e.uses_weight, ue.uses_weight, FALSE),
			COALESCE(e.uses_duration, ue.uses_duration, FALSE),
			COALESCE(e.uses_distance, ue.uses_distance, FALSE),
			we."order", we.effort_level
		FROM workout_exercise we
		LEFT JOIN exercise e ON e.id = we.predefined_exercise_id
		LEFT JOIN user_exercise ue ON ue.id = we.user_exercise_id
		WHERE we.workout_id = ANY($1)
		ORDER BY we.workout_id, we."order"`,
		workoutIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout exercises: %w", err)
	}

	type exercisePos struct {
		workoutID int
		index     int
	}
	byWorkout := map[int][]workout.ExerciseEntry{}
	positions := map[int]exercisePos{}
	var workoutExerciseIDs []int
	for rows.Next() {
		var (
			weID, workoutID int
			exerciseType    string
			entry           workout.ExerciseEntry
			effort          *string
		)
		if err := rows.Scan(
			&weID, &workoutID, &exerciseType, &entry.Exercise.ID, &entry.Exercise.Name,
			&entry.Exercise.Capability.UsesReps,
			&entry.Exercise.Capability.UsesWeight,
			&entry.Exercise.Capability.UsesDuration,
			&entry.Exercise.Capability.UsesDistance,
			&entry.Order, &effort,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}

		entry.Exercise.Type = workout.ExerciseType(exerciseType)
		if effort != nil {
			level := workout.EffortLevel(*effort)
			entry.EffortLevel = &level
		}
		entry.Sets = []workout.SetEntry{}

		positions[weID] = exercisePos{workoutID: workoutID, index: len(byWorkout[workoutID])}
		byWorkout[workoutID] = append(byWorkout[workoutID], entry)
		workoutExerciseIDs = append(workoutExerciseIDs, weID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout exercises rows: %w", err)
	}

	if len(workoutExerciseIDs) == 0 {
		return byWorkout, nil
	}

	setRows, err := r.db.Query(
		ctx,
		`SELECT workout_exercise_id, set_number, reps, weight_kg, duration_seconds, distance_meters
		FROM workout_set
		WHERE workout_exercise_id = ANY($1)
		ORDER BY workout_exercise_id, set_number`,
		workoutExerciseIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var (
			weID int
			set  workout.SetEntry
		)
		if err := setRows.Scan(&weID, &set.SetNumber, &set.Reps, &set.WeightKg, &set.DurationSeconds, &set.DistanceMeters); err != nil {
			return nil, fmt.Errorf("scan workout set: %w", err)
		}
		pos, ok := positions[weID]
		if !ok {
			continue
		}
		entries := byWorkout[pos.workoutID]
		entries[pos.index].Sets = append(entries[pos.index].Sets, set)
	}
	if err := setRows.Err(); err != nil {
		return nil, fmt.Errorf("workout sets rows: %w", err)
	}

	return byWorkout, nil
}

// exerciseInsertError reports a reference to a missing exercise as ErrUnknownExercise.
func exerciseInsertError(ref workout.ExerciseRef, err error) error {
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %s/%d", ErrUnknownExercise, ref.Type, ref.ID)
	}
	return fmt.Errorf("insert workout exercise: %w", err)
}
