package ranges

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luchik.app/trainers/internal/domain"
)

func TestRepeatDigit(t *testing.T) {
	require.Equal(t, 777, RepeatDigit(7, 3))
	require.Equal(t, 0, RepeatDigit(0, 2))
	require.Equal(t, 9999, RepeatDigit(9, 4))
	require.Equal(t, 5, RepeatDigit(5, 1))
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		tier     domain.Tier
		maxDigit int
		want     domain.RangeConfig
		maxSum   int
	}{
		{"units", 1, 9, domain.RangeConfig{Tier: 1, Label: "1-10", MinValue: 1, MaxValue: 9, DigitCount: 1}, 9},
		{"units small digit", 1, 3, domain.RangeConfig{Tier: 1, Label: "1-10", MinValue: 1, MaxValue: 9, DigitCount: 1}, 3},
		{"tens", 2, 5, domain.RangeConfig{Tier: 2, Label: "10-100", MinValue: 10, MaxValue: 55, DigitCount: 2}, 55},
		{"tens full", 2, 9, domain.RangeConfig{Tier: 2, Label: "10-100", MinValue: 10, MaxValue: 99, DigitCount: 2}, 99},
		{"hundreds", 3, 7, domain.RangeConfig{Tier: 3, Label: "100-1000", MinValue: 100, MaxValue: 777, DigitCount: 3}, 777},
		{"thousands", 4, 2, domain.RangeConfig{Tier: 4, Label: "1000-10000", MinValue: 1000, MaxValue: 2222, DigitCount: 4}, 2222},
		{"tier clamped low", 0, 9, domain.RangeConfig{Tier: 1, Label: "1-10", MinValue: 1, MaxValue: 9, DigitCount: 1}, 9},
		{"tier clamped high", 7, 3, domain.RangeConfig{Tier: 4, Label: "1000-10000", MinValue: 1000, MaxValue: 3333, DigitCount: 4}, 3333},
		{"digit clamped low", 2, 0, domain.RangeConfig{Tier: 2, Label: "10-100", MinValue: 10, MaxValue: 22, DigitCount: 2}, 22},
		{"digit clamped high", 1, 12, domain.RangeConfig{Tier: 1, Label: "1-10", MinValue: 1, MaxValue: 9, DigitCount: 1}, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, maxSum := New().Resolve(tc.tier, tc.maxDigit)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.maxSum, maxSum)
			require.LessOrEqual(t, got.MinValue, got.MaxValue)
		})
	}
}

func TestClamp(t *testing.T) {
	require.Equal(t, 2, Clamp(-5, 2, 9))
	require.Equal(t, 9, Clamp(50, 2, 9))
	require.Equal(t, 4, Clamp(4, 2, 9))
}
