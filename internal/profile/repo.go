package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		p           Profile
		unit, theme string
		dateOfBirth *time.Time
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT name, unit_preference, gender, date_of_birth, weight_kg, height_cm,
			body_fat_percentage, theme_preference, total_workouts, total_volume
		FROM profile
		WHERE user_id = $1`,
		userID,
	).Scan(
		&p.Name, &unit, &p.Gender, &dateOfBirth, &p.WeightKg, &p.HeightCm,
		&p.BodyFatPercentage, &theme, &p.TotalWorkouts, &p.TotalVolume,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("select profile: %w", err)
	}

	p.UnitPreference = Unit(unit)
	p.ThemePreference = Theme(theme)
	if dateOfBirth != nil {
		dob := dateOfBirth.Format(dateOfBirthLayout)
		p.DateOfBirth = &dob
	}

	return &p, nil
}

func (r *Repo) Update(ctx context.Context, userID int, u Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var dateOfBirth *time.Time
	if u.DateOfBirth != nil {
		dob, err := time.Parse(dateOfBirthLayout, *u.DateOfBirth)
		if err != nil {
			return fmt.Errorf("%w: date of birth %q", ErrInvalidProfile, *u.DateOfBirth)
		}
		dateOfBirth = &dob
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profile
		SET name = $2, unit_preference = $3, gender = $4, date_of_birth = $5, weight_kg = $6,
			height_cm = $7, body_fat_percentage = $8, theme_preference = $9, updated_at = now()
		WHERE user_id = $1`,
		userID, u.Name, string(u.UnitPreference), u.Gender, dateOfBirth, u.WeightKg,
		u.HeightCm, u.BodyFatPercentage, string(u.ThemePreference),
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}
