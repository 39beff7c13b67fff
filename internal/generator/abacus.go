package generator

import (
	"context"
	"time"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/ports"
	"luchik.app/trainers/internal/random"
	"luchik.app/trainers/internal/ranges"
)

// beadBound caps the running sum of a single-column drill regardless of maxSum.
const beadBound = 9

// BeadGenerator produces single-digit drills that are legal on one abacus column.
type BeadGenerator struct{}

func NewBeadGenerator() *BeadGenerator { return &BeadGenerator{} }

// Generate implements ports.Generator. Only MaxDigit and Count are read from
// req; the total is clamped into [0, req.MaxSum].
func (g *BeadGenerator) Generate(ctx context.Context, src random.Source, req domain.SequenceRequest) (domain.Sequence, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Sequence{}, ports.Stats{}, err
	}
	count := ranges.Clamp(req.Count, domain.MinCount, domain.MaxCount)
	nums := AbacusBeadSequence(src, req.MaxDigit, count)
	return domain.Sequence{
			Numbers: nums,
			Total:   ranges.Clamp(sum(nums), 0, req.MaxSum),
			MaxSum:  req.MaxSum,
			Range:   req.Range,
		}, ports.Stats{
			Trials:   len(nums),
			Passes:   1,
			Duration: time.Since(start),
		}, nil
}

// AbacusBeadSequence emits count signed moves, each legal for the simulated
// column, keeping the running sum within [0,9]. If the emitted values sum
// above maxDigit a single correcting value is appended, so the result has
// count or count+1 entries. maxDigit and count are clamped into their
// request bounds.
func AbacusBeadSequence(src random.Source, maxDigit, count int) []int {
	maxDigit = ranges.Clamp(maxDigit, domain.MinMaxDigit, domain.MaxMaxDigit)
	count = ranges.Clamp(count, domain.MinCount, domain.MaxCount)
	nums := make([]int, 0, count+1)
	var state BeadState
	running := 0

	for i := 0; i < count; i++ {
		moves := legalMoves(state, running, maxDigit, beadBound)
		if len(moves) == 0 {
			state, running = BeadState{}, 0
			moves = legalMoves(state, running, maxDigit, beadBound)
		}
		if len(moves) == 0 {
			safe := min(1, maxDigit)
			nums = append(nums, safe)
			running += safe
			state.Units = min(4, state.Units+safe)
			continue
		}

		pool := weighted(moves, maxDigit)
		move := pool[src.Intn(len(pool))]
		state = state.Apply(move)
		running += move
		nums = append(nums, move)
	}

	if total := sum(nums); total > maxDigit {
		if correction := maxDigit - total; correction != 0 {
			nums = append(nums, correction)
		}
	}
	return nums
}

func sum(nums []int) int {
	t := 0
	for _, n := range nums {
		t += n
	}
	return t
}
