package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/random"
	"luchik.app/trainers/internal/ranges"
)

func request(tier domain.Tier, maxDigit, count int) domain.SequenceRequest {
	cfg, maxSum := ranges.Resolve(tier, maxDigit)
	return domain.SequenceRequest{Range: cfg, MaxSum: maxSum, MaxDigit: maxDigit, Count: count}
}

func assertPrefixSums(t *testing.T, nums []int, maxSum int) {
	t.Helper()
	running := 0
	for i, v := range nums {
		running += v
		if running < 0 || running > maxSum {
			t.Fatalf("prefix sum %d at index %d outside [0,%d]: %v", running, i, maxSum, nums)
		}
	}
}

func TestTargetSumLengthAndBounds(t *testing.T) {
	g := NewTargetSumGenerator()
	for tier := domain.TierUnits; tier <= domain.TierThousands; tier++ {
		for maxDigit := 2; maxDigit <= 9; maxDigit++ {
			for _, count := range []int{2, 5, 12} {
				req := request(tier, maxDigit, count)
				seq, st, err := g.Generate(context.Background(), random.New(int64(tier)*1000+int64(maxDigit)*10+int64(count)), req)
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if len(seq.Numbers) != count {
					t.Fatalf("tier=%d maxDigit=%d count=%d: len=%d", tier, maxDigit, count, len(seq.Numbers))
				}
				if seq.Total != ranges.Clamp(sum(seq.Numbers), 0, req.MaxSum) {
					t.Fatalf("total %d does not match clamped sum of %v", seq.Total, seq.Numbers)
				}
				if st.Passes < 1 || st.Fallback != seq.Fallback {
					t.Fatalf("unexpected stats %+v", st)
				}
				if seq.Fallback {
					continue
				}
				assertPrefixSums(t, seq.Numbers, req.MaxSum)
				for _, v := range seq.Numbers {
					if m := abs(v); m < req.Range.MinValue || m > req.Range.MaxValue {
						t.Fatalf("magnitude %d outside [%d,%d]", m, req.Range.MinValue, req.Range.MaxValue)
					}
				}
			}
		}
	}
}

// TestTargetSumScenarioTensNine runs the tier 2, maxDigit 9 drill many times
// and checks the bound on every primary-path result.
func TestTargetSumScenarioTensNine(t *testing.T) {
	src := random.New(2024)
	primary := 0
	for i := 0; i < 1000; i++ {
		seq := TargetSumSequence(src, domain.TierTens, 5, 9)
		if len(seq.Numbers) != 5 {
			t.Fatalf("run %d: len=%d", i, len(seq.Numbers))
		}
		if seq.MaxSum != 99 {
			t.Fatalf("run %d: maxSum=%d", i, seq.MaxSum)
		}
		if seq.Fallback {
			continue
		}
		primary++
		assertPrefixSums(t, seq.Numbers, 99)
	}
	if primary == 0 {
		t.Fatal("expected at least one primary-path result")
	}
}

func TestTargetSumForcedFallback(t *testing.T) {
	// All-zero draws: target 0, every magnitude 10. The pass places +10, +10
	// and then needs exactly -20 at the last index, which a single trial
	// cannot supply.
	g := &TargetSumGenerator{MaxTrials: 1, MaxPasses: 1}
	seq, st, err := g.Generate(context.Background(), random.Script(0), request(domain.TierTens, 9, 3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !seq.Fallback || !st.Fallback {
		t.Fatalf("expected fallback, got %+v / %+v", seq, st)
	}
	if st.Passes != 1 || st.Trials != 3 {
		t.Fatalf("stats = %+v, want 1 pass and 3 trials", st)
	}
	if diff := cmp.Diff([]int{10, 10, 10}, seq.Numbers); diff != "" {
		t.Fatalf("fallback numbers mismatch (-want +got):\n%s", diff)
	}
	if seq.Total != 30 {
		t.Fatalf("total = %d, want 30", seq.Total)
	}
}

func TestFallbackSequenceShape(t *testing.T) {
	req := request(domain.TierThousands, 9, 40)
	nums := fallbackSequence(random.New(9), req.Range, req.MaxSum, 9, 40)
	if len(nums) != 40 {
		t.Fatalf("len=%d, want 40", len(nums))
	}
	for _, v := range nums {
		if v == 0 {
			t.Fatalf("fallback emitted zero: %v", nums)
		}
	}
}

func TestFallbackClampsWhenNoSignFits(t *testing.T) {
	// maxSum 22 with magnitudes in [10,22]. The draws give +20, -11 and then
	// 20 again from 9, where neither sign fits, so it is cut to 22-9.
	cfg := domain.RangeConfig{Tier: 2, MinValue: 10, MaxValue: 22, DigitCount: 2}
	nums := fallbackSequence(random.Script(1, 0, 0, 0, 1, 0), cfg, 22, 2, 3)
	if diff := cmp.Diff([]int{20, -11, 13}, nums); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTargetSumHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewTargetSumGenerator().Generate(ctx, random.New(1), request(domain.TierTens, 9, 5))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSampleMagnitudeDigits(t *testing.T) {
	src := random.New(5)
	for i := 0; i < 2000; i++ {
		v := sampleMagnitude(src, 3, 4)
		if v < 100 || v > 444 {
			t.Fatalf("magnitude %d outside [100,444]", v)
		}
		for x := v; x > 0; x /= 10 {
			if x%10 > 4 {
				t.Fatalf("digit above 4 in %d", v)
			}
		}
	}
	if got := sampleMagnitude(random.Script(0), 2, 9); got != 10 {
		t.Fatalf("leading digit must be non-zero, got %d", got)
	}
}

func TestAdmissibleSigns(t *testing.T) {
	cases := []struct {
		name                               string
		current, mag, target, maxSum, reach int
		want                               []int
	}{
		{"both", 50, 10, 50, 99, 99, []int{1, -1}},
		{"floor", 5, 10, 50, 99, 99, []int{1}},
		{"ceiling", 95, 10, 50, 99, 99, []int{-1}},
		{"target out of reach", 50, 10, 99, 99, 40, []int{1}},
		{"none", 5, 10, 99, 10, 99, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := admissibleSigns(tc.current, tc.mag, tc.target, tc.maxSum, tc.reach)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestTargetSumTightRangesStayBounded covers the narrowest thousands drills,
// where only a few dozen magnitudes exist and most passes miss the target.
func TestTargetSumTightRangesStayBounded(t *testing.T) {
	g := NewTargetSumGenerator()
	for maxDigit := 2; maxDigit <= 4; maxDigit++ {
		for _, count := range []int{2, 10, 50, 99} {
			for seed := int64(1); seed <= 20; seed++ {
				req := request(domain.TierThousands, maxDigit, count)
				seq, st, err := g.Generate(context.Background(), random.New(seed), req)
				if err != nil {
					t.Fatalf("Generate: %v", err)
				}
				if seq.Fallback {
					t.Fatalf("maxDigit=%d count=%d seed=%d fell back after %d passes", maxDigit, count, seed, st.Passes)
				}
				if len(seq.Numbers) != count {
					t.Fatalf("maxDigit=%d count=%d seed=%d: len=%d", maxDigit, count, seed, len(seq.Numbers))
				}
				assertPrefixSums(t, seq.Numbers, req.MaxSum)
			}
		}
	}
}
