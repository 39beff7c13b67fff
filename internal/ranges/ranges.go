// Package ranges maps a difficulty tier and a max-digit setting to the
// numeric bounds a drill is generated within.
package ranges

import "luchik.app/trainers/internal/domain"

// Resolver implements ports.RangeResolver.
type Resolver struct{}

func New() *Resolver { return &Resolver{} }

// Resolve delegates to the package-level Resolve.
func (*Resolver) Resolve(tier domain.Tier, maxDigit int) (domain.RangeConfig, int) {
	return Resolve(tier, maxDigit)
}

// Resolve returns the range for tier and the largest running sum a drill may
// reach. Inputs are clamped to tier∈[1,4] and maxDigit∈[2,9].
//
// For tiers above 1 the running-sum bound is maxDigit repeated once per
// digit and is not capped by the display ceiling, while MaxValue is.
func Resolve(tier domain.Tier, maxDigit int) (domain.RangeConfig, int) {
	tier = domain.Tier(Clamp(int(tier), domain.MinTier, domain.MaxTier))
	maxDigit = Clamp(maxDigit, domain.MinMaxDigit, domain.MaxMaxDigit)

	if tier == domain.TierUnits {
		return domain.RangeConfig{
			Tier:       tier,
			Label:      tier.Label(),
			MinValue:   1,
			MaxValue:   9,
			DigitCount: 1,
		}, maxDigit
	}

	digits := tier.Digits()
	effectiveMax := RepeatDigit(maxDigit, digits)
	return domain.RangeConfig{
		Tier:       tier,
		Label:      tier.Label(),
		MinValue:   Pow10(digits - 1),
		MaxValue:   min(Pow10(digits)-1, effectiveMax),
		DigitCount: digits,
	}, effectiveMax
}

// RepeatDigit writes digit n times in decimal: RepeatDigit(7, 3) == 777.
func RepeatDigit(digit, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		v = v*10 + digit
	}
	return v
}

// Pow10 returns 10^n for n >= 0.
func Pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
