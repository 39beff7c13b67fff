package stroop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/random"
)

func TestSessionLevels(t *testing.T) {
	cases := []struct {
		level   domain.StroopLevel
		rounds  int
		seconds int
	}{
		{domain.StroopEasy, 12, 48},
		{domain.StroopNormal, 20, 60},
		{domain.StroopHard, 30, 75},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			s := Session(random.New(1), tc.level)
			require.Equal(t, tc.level, s.Level)
			require.Equal(t, tc.rounds, s.TotalRounds)
			require.Len(t, s.Rounds, tc.rounds)
			require.Equal(t, tc.seconds, s.RecommendedSeconds)
			require.Len(t, s.Colors, len(Palette))
		})
	}
}

func TestSessionUnknownLevelFallsBackToNormal(t *testing.T) {
	s := Session(random.New(1), "impossible")
	require.Equal(t, domain.StroopNormal, s.Level)
	require.Len(t, s.Rounds, 20)
}

func TestRoundsChoicesContainAnswer(t *testing.T) {
	hexByName := map[string]string{}
	for _, c := range Palette {
		hexByName[c.Name] = c.Hex
	}
	rounds := Rounds(random.New(77), 500, 70)
	mismatched := 0
	for i, r := range rounds {
		require.Equal(t, i+1, r.ID)
		require.Equal(t, hexByName[r.CorrectAnswer], r.InkColor)
		require.Len(t, r.Choices, choiceCount)
		require.Contains(t, r.Choices, r.CorrectAnswer)

		seen := map[string]bool{}
		for _, c := range r.Choices {
			require.False(t, seen[c], "duplicate choice %q in round %d", c, r.ID)
			seen[c] = true
		}
		if r.Word != r.CorrectAnswer {
			mismatched++
		}
	}
	require.Greater(t, mismatched, 250)
	require.Less(t, mismatched, 450)
}

func TestRoundsNeverMismatchAtZeroPercent(t *testing.T) {
	for _, r := range Rounds(random.New(3), 50, 0) {
		require.Equal(t, r.CorrectAnswer, r.Word)
	}
}

func TestLevelFor(t *testing.T) {
	l, ok := LevelFor(domain.StroopHard)
	require.True(t, ok)
	require.Equal(t, 85, l.MismatchPercent)
	_, ok = LevelFor("nope")
	require.False(t, ok)
}
