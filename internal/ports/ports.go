package ports

import (
	"context"
	"time"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/random"
)

// Stats captures how much work a generation took.
type Stats struct {
	Trials   int
	Passes   int
	Fallback bool
	Duration time.Duration
}

// RangeResolver maps a tier and max digit to a value range and running-sum bound.
type RangeResolver interface {
	Resolve(tier domain.Tier, maxDigit int) (domain.RangeConfig, int)
}

// Generator produces a signed sequence for an already resolved range.
type Generator interface {
	Generate(ctx context.Context, src random.Source, req domain.SequenceRequest) (domain.Sequence, Stats, error)
}

// ColumnMapper renders a non-negative number as abacus columns.
type ColumnMapper interface {
	NumberToColumns(n int) ([]domain.AbacusColumn, error)
}

// Hinter splits a value into five-complement bead moves.
type Hinter interface {
	Decompose(value, brother int) domain.BrotherStep
}

// Validator performs boundary checks on raw request fields.
type Validator interface {
	ValidateSession(ctx context.Context, tier, maxDigit, count int, speed float64) (ok bool, conflicts []domain.FieldError, err error)
	ValidateBrothers(ctx context.Context, brother, tier, count int, speed float64) (ok bool, conflicts []domain.FieldError, err error)
	ValidateSchulte(ctx context.Context, size int) (ok bool, conflicts []domain.FieldError, err error)
	ValidateStroop(ctx context.Context, level domain.StroopLevel) (ok bool, conflicts []domain.FieldError, err error)
}
