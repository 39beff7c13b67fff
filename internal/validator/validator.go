package validator

import (
	"context"
	"fmt"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/stroop"
)

// FieldValidator checks raw request fields before they reach a generator.
type FieldValidator struct{}

func New() *FieldValidator { return &FieldValidator{} }

// ValidateSession checks a quick-math or flash-card request.
func (v *FieldValidator) ValidateSession(ctx context.Context, tier, maxDigit, count int, speed float64) (bool, []domain.FieldError, error) {
	conf := make([]domain.FieldError, 0, 4)
	conf = intField(conf, "range_key", tier, domain.MinTier, domain.MaxTier)
	conf = intField(conf, "max_digit", maxDigit, domain.MinMaxDigit, domain.MaxMaxDigit)
	conf = intField(conf, "count", count, domain.MinCount, domain.MaxCount)
	conf = speedField(conf, speed)
	return len(conf) == 0, conf, nil
}

// ValidateBrothers checks a brothers drill request.
func (v *FieldValidator) ValidateBrothers(ctx context.Context, brother, tier, count int, speed float64) (bool, []domain.FieldError, error) {
	conf := make([]domain.FieldError, 0, 4)
	conf = intField(conf, "brother", brother, domain.MinBrother, domain.MaxBrother)
	conf = intField(conf, "range_key", tier, domain.MinTier, domain.MaxTier)
	conf = intField(conf, "count", count, domain.MinCount, domain.MaxCount)
	conf = speedField(conf, speed)
	return len(conf) == 0, conf, nil
}

// ValidateSchulte checks a Schulte grid size.
func (v *FieldValidator) ValidateSchulte(ctx context.Context, size int) (bool, []domain.FieldError, error) {
	conf := intField(nil, "size", size, domain.MinGridSize, domain.MaxGridSize)
	return len(conf) == 0, conf, nil
}

// ValidateStroop checks a Stroop level name.
func (v *FieldValidator) ValidateStroop(ctx context.Context, level domain.StroopLevel) (bool, []domain.FieldError, error) {
	if _, ok := stroop.LevelFor(level); ok {
		return true, nil, nil
	}
	return false, []domain.FieldError{{
		Field:   "level",
		Message: fmt.Sprintf("unknown level %q, want easy, normal or hard", level),
	}}, nil
}

func intField(conf []domain.FieldError, name string, v, lo, hi int) []domain.FieldError {
	if v < lo || v > hi {
		conf = append(conf, domain.FieldError{
			Field:   name,
			Message: fmt.Sprintf("must be between %d and %d, got %d", lo, hi, v),
		})
	}
	return conf
}

func speedField(conf []domain.FieldError, speed float64) []domain.FieldError {
	if speed < domain.MinSpeed || speed > domain.MaxSpeed {
		conf = append(conf, domain.FieldError{
			Field:   "speed",
			Message: fmt.Sprintf("must be between %.2f and %.1f, got %g", domain.MinSpeed, domain.MaxSpeed, speed),
		})
	}
	return conf
}
