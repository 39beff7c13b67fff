package hint

import (
	"fmt"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/random"
	"luchik.app/trainers/internal/ranges"
)

// Brothers implements a Hinter that splits values ending in a "brother" digit
// into the five-complement moves: +b = +5 -(5-b), -b = -5 +(5-b).
type Brothers struct{}

func NewBrothers() *Brothers { return &Brothers{} }

// Decompose returns the bead moves for value. When |value| does not end in
// brother the value is returned as a single step.
func (h *Brothers) Decompose(value, brother int) domain.BrotherStep {
	mag, sign := value, 1
	if value < 0 {
		mag, sign = -value, -1
	}
	if brother < domain.MinBrother || brother > domain.MaxBrother || mag%10 != brother {
		return domain.BrotherStep{Value: value, Steps: []int{value}}
	}

	steps := make([]int, 0, 3)
	if base := (mag / 10) * 10 * sign; base != 0 {
		steps = append(steps, base)
	}
	steps = append(steps, sign*5, -sign*(5-brother))
	return domain.BrotherStep{Value: value, Steps: steps, UsedBrother: true}
}

// Question draws a value whose last digit is brother and whose magnitude fits
// the tier, with a random sign.
func Question(src random.Source, tier domain.Tier, brother int) int {
	digits := ranges.Clamp(tier.Digits(), domain.MinTier, domain.MaxTier)
	mag := brother
	if digits > 1 {
		head := random.Between(src, ranges.Pow10(digits-2), ranges.Pow10(digits-1)-1)
		mag = head*10 + brother
	}
	if src.Intn(2) == 1 {
		return -mag
	}
	return mag
}

// Display formats a value with an explicit sign, as shown on a flash card.
func Display(value int) string {
	return fmt.Sprintf("%+d", value)
}
