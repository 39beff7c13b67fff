// Package abacus converts numbers into abacus rod positions for display.
package abacus

import (
	"fmt"

	"luchik.app/trainers/internal/domain"
)

// Mapper implements ports.ColumnMapper.
type Mapper struct{}

func New() *Mapper { return &Mapper{} }

func (*Mapper) NumberToColumns(n int) ([]domain.AbacusColumn, error) { return NumberToColumns(n) }

// DigitToColumn returns the bead positions for a single digit. Digits outside
// [0,9] fail with domain.ErrInvalidDigit.
func DigitToColumn(d int) (domain.AbacusColumn, error) {
	if d < 0 || d > 9 {
		return domain.AbacusColumn{}, &domain.Error{
			Code:    domain.CodeInvalidDigit,
			Message: fmt.Sprintf("digit %d must be between 0 and 9", d),
		}
	}
	if d >= 5 {
		return domain.AbacusColumn{UpperActive: true, LowerCount: d - 5}, nil
	}
	return domain.AbacusColumn{LowerCount: d}, nil
}

// NumberToColumns returns one column per decimal digit of n, most significant
// first. Zero yields a single column; negative numbers are rejected.
func NumberToColumns(n int) ([]domain.AbacusColumn, error) {
	if n < 0 {
		return nil, &domain.Error{
			Code:    domain.CodeInvalidDigit,
			Message: fmt.Sprintf("number %d must not be negative", n),
		}
	}
	var digits []int
	for {
		digits = append(digits, n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	cols := make([]domain.AbacusColumn, len(digits))
	for i, d := range digits {
		col, err := DigitToColumn(d)
		if err != nil {
			return nil, err
		}
		cols[len(digits)-1-i] = col
	}
	return cols, nil
}
