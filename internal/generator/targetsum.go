package generator

import (
	"context"
	"time"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/ports"
	"luchik.app/trainers/internal/random"
	"luchik.app/trainers/internal/ranges"
)

const (
	// DefaultMaxTrials bounds the magnitude draws spent on one index.
	DefaultMaxTrials = 1000
	// DefaultMaxPasses bounds how many fresh targets are tried before the
	// unconstrained fallback pass runs.
	DefaultMaxPasses = 1024
)

// TargetSumGenerator steers a multi-digit sequence toward a random target sum
// while keeping every prefix sum within [0, maxSum].
type TargetSumGenerator struct {
	MaxTrials int
	MaxPasses int
}

func NewTargetSumGenerator() *TargetSumGenerator {
	return &TargetSumGenerator{MaxTrials: DefaultMaxTrials, MaxPasses: DefaultMaxPasses}
}

// TargetSumSequence resolves the range for tier and runs a default generator.
func TargetSumSequence(src random.Source, tier domain.Tier, count, maxDigit int) domain.Sequence {
	cfg, maxSum := ranges.Resolve(tier, maxDigit)
	seq, _, _ := NewTargetSumGenerator().Generate(context.Background(), src, domain.SequenceRequest{
		Range:    cfg,
		MaxSum:   maxSum,
		MaxDigit: maxDigit,
		Count:    count,
	})
	return seq
}

// Generate implements ports.Generator.
//
// Each pass picks a target in [0, maxSum] and fills the sequence index by
// index; an index that exhausts MaxTrials abandons the pass. After MaxPasses
// failed passes a best-effort sequence is built instead and Stats.Fallback is
// set. Only the context error is ever returned.
func (g *TargetSumGenerator) Generate(ctx context.Context, src random.Source, req domain.SequenceRequest) (domain.Sequence, ports.Stats, error) {
	start := time.Now()
	maxDigit := ranges.Clamp(req.MaxDigit, domain.MinMaxDigit, domain.MaxMaxDigit)
	count := ranges.Clamp(req.Count, domain.MinCount, domain.MaxCount)
	passes := g.MaxPasses
	if passes <= 0 {
		passes = DefaultMaxPasses
	}

	var st ports.Stats
	result := func(nums []int, fallback bool) domain.Sequence {
		st.Fallback = fallback
		st.Duration = time.Since(start)
		return domain.Sequence{
			Numbers:  nums,
			Total:    ranges.Clamp(sum(nums), 0, req.MaxSum),
			MaxSum:   req.MaxSum,
			Range:    req.Range,
			Fallback: fallback,
		}
	}

	for pass := 0; pass < passes; pass++ {
		if err := ctx.Err(); err != nil {
			return domain.Sequence{}, st, err
		}
		st.Passes++
		nums, trials, ok := g.search(src, req.Range, req.MaxSum, maxDigit, count)
		st.Trials += trials
		if ok && len(nums) == count {
			return result(nums, false), st, nil
		}
	}
	nums := fallbackSequence(src, req.Range, req.MaxSum, maxDigit, count)
	return result(nums, true), st, nil
}

// search runs one pass. It reports the trials spent and whether every index
// was placed.
func (g *TargetSumGenerator) search(src random.Source, cfg domain.RangeConfig, maxSum, maxDigit, count int) ([]int, int, bool) {
	maxTrials := g.MaxTrials
	if maxTrials <= 0 {
		maxTrials = DefaultMaxTrials
	}
	target := src.Intn(maxSum + 1)
	nums := make([]int, 0, count)
	current, trials := 0, 0

	for i := 0; i < count; i++ {
		remaining := count - i - 1
		placed := false
		for t := 0; t < maxTrials && !placed; t++ {
			trials++
			mag := sampleMagnitude(src, cfg.DigitCount, maxDigit)
			if mag < cfg.MinValue || mag > cfg.MaxValue {
				continue
			}
			var v int
			if remaining == 0 {
				need := target - current
				if abs(need) != mag {
					continue
				}
				v = need
			} else {
				signs := admissibleSigns(current, mag, target, maxSum, remaining*cfg.MaxValue)
				if len(signs) == 0 {
					continue
				}
				v = signs[src.Intn(len(signs))] * mag
			}
			if next := current + v; next < 0 || next > maxSum {
				continue
			}
			nums = append(nums, v)
			current += v
			placed = true
		}
		if !placed {
			return nil, trials, false
		}
	}
	return nums, trials, true
}

// admissibleSigns returns the signs that keep the running sum in [0, maxSum]
// and leave the target within reach of the remaining values.
func admissibleSigns(current, mag, target, maxSum, reach int) []int {
	signs := make([]int, 0, 2)
	for _, s := range [2]int{1, -1} {
		next := current + s*mag
		if next < 0 || next > maxSum {
			continue
		}
		if abs(target-next) <= reach {
			signs = append(signs, s)
		}
	}
	return signs
}

// fallbackSequence builds count values without the reachability check. The
// running sum is clamped after every step, so prefix sums of the returned
// values may leave [0, maxSum].
func fallbackSequence(src random.Source, cfg domain.RangeConfig, maxSum, maxDigit, count int) []int {
	nums := make([]int, 0, count)
	current := 0
	for i := 0; i < count; i++ {
		mag := ranges.Clamp(sampleMagnitude(src, cfg.DigitCount, maxDigit), cfg.MinValue, cfg.MaxValue)

		signs := make([]int, 0, 2)
		if current+mag <= maxSum {
			signs = append(signs, 1)
		}
		if current-mag >= 0 {
			signs = append(signs, -1)
		}
		sign := 1
		if len(signs) == 0 {
			if current+mag > maxSum {
				mag = max(maxSum-current, cfg.MinValue)
			}
		} else {
			sign = signs[src.Intn(len(signs))]
		}

		v := sign * mag
		nums = append(nums, v)
		current = ranges.Clamp(current+v, 0, maxSum)
	}
	return nums
}

// sampleMagnitude draws a digits-long number: the leading digit from
// [1,maxDigit], the rest from [0,maxDigit].
func sampleMagnitude(src random.Source, digits, maxDigit int) int {
	v := random.Between(src, 1, maxDigit)
	for i := 1; i < digits; i++ {
		v = v*10 + random.Between(src, 0, maxDigit)
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
