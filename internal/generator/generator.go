// Package generator builds the signed value sequences shown in arithmetic
// drills.
//
// Two generators implement ports.Generator: BeadGenerator simulates a single
// abacus column and only emits moves that column allows, and
// TargetSumGenerator steers multi-digit values toward a random total. Use
// UsesBeads to pick between them.
package generator

import "luchik.app/trainers/internal/domain"

// UsesBeads reports whether a drill at tier with maxDigit is generated on a
// single bead column rather than by target-sum search.
func UsesBeads(tier domain.Tier, maxDigit int) bool {
	return tier == domain.TierUnits && maxDigit >= 5
}
