package domain

// Tier selects the digit count and natural numeric range of a drill.
type Tier int

const (
	TierUnits     Tier = iota + 1 // 1..9
	TierTens                      // 10..99
	TierHundreds                  // 100..999
	TierThousands                 // 1000..9999
)

// Digits is the number of decimal digits generated values carry at this tier.
func (t Tier) Digits() int { return int(t) }

// Label is the human-readable range shown next to the tier.
func (t Tier) Label() string {
	switch t {
	case TierUnits:
		return "1-10"
	case TierTens:
		return "10-100"
	case TierHundreds:
		return "100-1000"
	case TierThousands:
		return "1000-10000"
	default:
		return ""
	}
}

// StroopLevel names a Stroop test difficulty.
type StroopLevel string

const (
	StroopEasy   StroopLevel = "easy"
	StroopNormal StroopLevel = "normal"
	StroopHard   StroopLevel = "hard"
)

// Request bounds enforced at the boundary.
const (
	MinTier     = 1
	MaxTier     = 4
	MinMaxDigit = 2
	MaxMaxDigit = 9
	MinCount    = 2
	MaxCount    = 99
	MinSpeed    = 0.05
	MaxSpeed    = 10.0
	MinBrother  = 1
	MaxBrother  = 4
	MinGridSize = 2
	MaxGridSize = 8
)
