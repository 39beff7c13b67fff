package generator

// BeadState is one abacus column: the five-bead and up to four unit beads.
type BeadState struct {
	HasFive bool
	Units   int
}

// Value is the digit the column currently shows.
func (s BeadState) Value() int {
	if s.HasFive {
		return 5 + s.Units
	}
	return s.Units
}

// Apply returns the state after move. A ±5 move sets the five-bead, moves of
// magnitude below 5 shift the unit beads, and larger direct moves leave the
// column untouched (they are taken on the neighbouring rod).
func (s BeadState) Apply(move int) BeadState {
	mag := move
	if mag < 0 {
		mag = -mag
	}
	switch {
	case mag == 5:
		s.HasFive = move > 0
	case mag < 5:
		s.Units += move
	}
	return s
}

// Moves lists the signed moves the column allows for maxDigit, before any
// running-sum bound is applied: toggling the five-bead (maxDigit >= 5),
// shifting 1..min(4,maxDigit) unit beads while staying in [0,4], and the
// direct ±maxDigit move when maxDigit > 5.
func (s BeadState) Moves(maxDigit int) []int {
	moves := make([]int, 0, 12)
	if maxDigit >= 5 {
		if s.HasFive {
			moves = append(moves, -5)
		} else {
			moves = append(moves, 5)
		}
	}
	for i := 1; i <= min(4, maxDigit); i++ {
		if s.Units+i <= 4 {
			moves = append(moves, i)
		}
		if s.Units-i >= 0 {
			moves = append(moves, -i)
		}
	}
	if maxDigit > 5 {
		moves = append(moves, maxDigit, -maxDigit)
	}
	return moves
}

// legalMoves keeps the moves whose resulting running sum stays in [0, bound].
func legalMoves(s BeadState, sum, maxDigit, bound int) []int {
	all := s.Moves(maxDigit)
	out := all[:0]
	for _, m := range all {
		if next := sum + m; next >= 0 && next <= bound {
			out = append(out, m)
		}
	}
	return out
}

// moveWeight favours the max-digit and five-bead moves, which drill the
// complement techniques.
func moveWeight(move, maxDigit int) int {
	mag := move
	if mag < 0 {
		mag = -mag
	}
	switch {
	case mag == maxDigit:
		switch maxDigit {
		case 9:
			return 6
		case 4:
			return 5
		default:
			return 4
		}
	case mag == 5 && maxDigit >= 5:
		return 2
	default:
		return 1
	}
}

// weighted expands each move by its weight so a uniform pick over the result
// is a weighted pick over moves.
func weighted(moves []int, maxDigit int) []int {
	out := make([]int, 0, len(moves)*2)
	for _, m := range moves {
		for w := moveWeight(m, maxDigit); w > 0; w-- {
			out = append(out, m)
		}
	}
	return out
}
