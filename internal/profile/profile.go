package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrProfileNotFound = errors.New("profile not found")
)

type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"

	kgToLbs           = 2.20462
	dateOfBirthLayout = "2006-01-02"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type Profile struct {
	Name              *string  `json:"name"`
	UnitPreference    Unit     `json:"unit_preference"`
	Gender            *string  `json:"gender"`
	DateOfBirth       *string  `json:"date_of_birth"`
	WeightKg          *float64 `json:"weight_kg"`
	HeightCm          *float64 `json:"height_cm"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	ThemePreference   Theme    `json:"theme_preference"`
	TotalWorkouts     int      `json:"total_workouts"`
	TotalVolume       float64  `json:"total_volume"`
	DisplayWeight     string   `json:"display_weight,omitempty"`
}

// Update holds the user editable part of a profile. Every field is replaced.
type Update struct {
	Name              *string  `json:"name"`
	UnitPreference    Unit     `json:"unit_preference"`
	Gender            *string  `json:"gender"`
	DateOfBirth       *string  `json:"date_of_birth"`
	WeightKg          *float64 `json:"weight_kg"`
	HeightCm          *float64 `json:"height_cm"`
	BodyFatPercentage *float64 `json:"body_fat_percentage"`
	ThemePreference   Theme    `json:"theme_preference"`
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...))
}

// Validate normalizes the update and checks the allowed ranges.
// Missing unit and theme fall back to metric and system.
func (u *Update) Validate(now time.Time) error {
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if n := utf8.RuneCountInString(name); n < 1 || n > 50 {
			return invalid("name must have 1 to 50 characters")
		}
		u.Name = &name
	}

	switch u.UnitPreference {
	case "":
		u.UnitPreference = UnitMetric
	case UnitMetric, UnitImperial:
	default:
		return invalid("unknown unit %q", u.UnitPreference)
	}

	switch u.ThemePreference {
	case "":
		u.ThemePreference = ThemeSystem
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return invalid("unknown theme %q", u.ThemePreference)
	}

	if u.Gender != nil {
		switch *u.Gender {
		case "male", "female", "other":
		default:
			return invalid("unknown gender %q", *u.Gender)
		}
	}

	if u.DateOfBirth != nil {
		dob, err := time.Parse(dateOfBirthLayout, *u.DateOfBirth)
		if err != nil {
			return invalid("date of birth %q", *u.DateOfBirth)
		}
		if dob.After(now) {
			return invalid("date of birth in the future")
		}
	}

	if err := checkRange("weight", u.WeightKg, 20, 500); err != nil {
		return err
	}
	if err := checkRange("height", u.HeightCm, 50, 250); err != nil {
		return err
	}
	return checkRange("body fat", u.BodyFatPercentage, 2, 60)
}

func checkRange(field string, value *float64, min, max float64) error {
	if value == nil {
		return nil
	}
	if *value < min || *value > max {
		return invalid("%s must be between %g and %g", field, min, max)
	}
	return nil
}

// FormatWeight renders a weight in the preferred unit.
func FormatWeight(kg float64, unit Unit, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if unit == UnitImperial {
		return fmt.Sprintf("%.*f lbs", decimals, kg*kgToLbs)
	}
	return fmt.Sprintf("%.*f kg", decimals, kg)
}
