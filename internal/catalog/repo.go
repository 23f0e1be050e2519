package catalog

import (
	"context"
	"fmt"

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

func (r *Repo) ListPredefined(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listPredefined")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, primary_muscle_group, secondary_muscle_group, category,
			uses_reps, uses_weight, uses_duration, uses_distance
		FROM exercise
		WHERE is_deleted = FALSE
		ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("query predefined exercises: %w", err)
	}

	return rows2Exercises(rows, workout.ExerciseTypePredefined)
}

func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listByUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, primary_muscle_group, secondary_muscle_group, category,
			uses_reps, uses_weight, uses_duration, uses_distance
		FROM user_exercise
		WHERE user_id = $1 AND is_deleted = FALSE
		ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query user exercises: %w", err)
	}

	return rows2Exercises(rows, workout.ExerciseTypeUser)
}

func (r *Repo) AddUserExercise(ctx context.Context, userID int, ex NewExercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.addUserExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO user_exercise (
			user_id, name, primary_muscle_group, secondary_muscle_group, category,
			uses_reps, uses_weight, uses_duration, uses_distance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		userID, ex.Name, ex.PrimaryMuscleGroup, ex.SecondaryMuscleGroup, ex.Category,
		ex.Capability.UsesReps, ex.Capability.UsesWeight, ex.Capability.UsesDuration, ex.Capability.UsesDistance,
	).Scan(&id); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrExerciseExists
		}
		return nil, fmt.Errorf("insert user exercise: %w", err)
	}

	return &Exercise{
		ID:                   id,
		Type:                 workout.ExerciseTypeUser,
		Name:                 ex.Name,
		PrimaryMuscleGroup:   ex.PrimaryMuscleGroup,
		SecondaryMuscleGroup: ex.SecondaryMuscleGroup,
		Category:             ex.Category,
		Capability:           ex.Capability,
	}, nil
}

func rows2Exercises(rows pgx.Rows, exerciseType workout.ExerciseType) ([]Exercise, error) {
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var ex Exercise
		var usesReps, usesWeight, usesDur, usesDist *bool
		if err := rows.Scan(
			&ex.ID, &ex.Name, &ex.PrimaryMuscleGroup, &ex.SecondaryMuscleGroup, &ex.Category,
			&usesReps, &usesWeight, &usesDur, &usesDist,
		); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}

		ex.Type = exerciseType
		ex.Capability = workout.Capability{
			UsesReps:     flag(usesReps),
			UsesWeight:   flag(usesWeight),
			UsesDuration: flag(usesDur),
			UsesDistance: flag(usesDist),
		}
		exercises = append(exercises, ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return exercises, nil
}

// AddPredefined inserts the exercise into the predefined catalog unless one with
// the same name exists. It reports whether a row was added.
func (r *Repo) AddPredefined(ctx context.Context, ex NewExercise) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.addPredefined")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO exercise (
			name, primary_muscle_group, secondary_muscle_group, category,
			uses_reps, uses_weight, uses_duration, uses_distance
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (SELECT 1 FROM exercise WHERE name = $1 AND is_deleted = FALSE)`,
		ex.Name, ex.PrimaryMuscleGroup, ex.SecondaryMuscleGroup, ex.Category,
		ex.Capability.UsesReps, ex.Capability.UsesWeight, ex.Capability.UsesDuration, ex.Capability.UsesDistance,
	)
	if err != nil {
		return false, fmt.Errorf("insert predefined exercise: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
