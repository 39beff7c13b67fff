// Package stroop builds rounds for the Stroop colour-word test.
package stroop

import (
	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/random"
)

// Palette is the set of colours words and inks are drawn from.
var Palette = []domain.StroopColor{
	{Name: "red", Hex: "#E74C3C"},
	{Name: "blue", Hex: "#277BC0"},
	{Name: "green", Hex: "#27AE60"},
	{Name: "yellow", Hex: "#F1C40F"},
	{Name: "purple", Hex: "#8E44AD"},
	{Name: "orange", Hex: "#F39C12"},
}

// Level configures one difficulty.
type Level struct {
	Rounds             int
	MismatchPercent    int
	RecommendedSeconds int
}

var levels = map[domain.StroopLevel]Level{
	domain.StroopEasy:   {Rounds: 12, MismatchPercent: 55, RecommendedSeconds: 48},
	domain.StroopNormal: {Rounds: 20, MismatchPercent: 70, RecommendedSeconds: 60},
	domain.StroopHard:   {Rounds: 30, MismatchPercent: 85, RecommendedSeconds: 75},
}

// choiceCount is how many answers each round offers.
const choiceCount = 4

// LevelFor looks up a level by name.
func LevelFor(name domain.StroopLevel) (Level, bool) {
	l, ok := levels[name]
	return l, ok
}

// Session builds a full test for level. The level must be known; unknown
// names fall back to normal.
func Session(src random.Source, name domain.StroopLevel) domain.StroopSession {
	lvl, ok := levels[name]
	if !ok {
		name, lvl = domain.StroopNormal, levels[domain.StroopNormal]
	}
	return domain.StroopSession{
		Level:              name,
		TotalRounds:        lvl.Rounds,
		RecommendedSeconds: lvl.RecommendedSeconds,
		Colors:             append([]domain.StroopColor(nil), Palette...),
		Rounds:             Rounds(src, lvl.Rounds, lvl.MismatchPercent),
	}
}

// Rounds draws total rounds; roughly mismatchPercent of them name a colour
// other than the ink.
func Rounds(src random.Source, total, mismatchPercent int) []domain.StroopRound {
	rounds := make([]domain.StroopRound, 0, total)
	for i := 0; i < total; i++ {
		ink := Palette[src.Intn(len(Palette))]
		word := ink.Name
		if src.Intn(100) < mismatchPercent {
			others := make([]domain.StroopColor, 0, len(Palette)-1)
			for _, c := range Palette {
				if c.Name != ink.Name {
					others = append(others, c)
				}
			}
			word = others[src.Intn(len(others))].Name
		}
		rounds = append(rounds, domain.StroopRound{
			ID:            i + 1,
			Word:          word,
			InkColor:      ink.Hex,
			CorrectAnswer: ink.Name,
			Choices:       choices(src, ink.Name),
		})
	}
	return rounds
}

// choices samples distinct palette names, swaps the correct answer in when the
// sample missed it, and shuffles the result.
func choices(src random.Source, correct string) []string {
	names := make([]string, len(Palette))
	for i, c := range Palette {
		names[i] = c.Name
	}
	n := min(choiceCount, len(names))
	// partial Fisher-Yates: the first n entries become the sample
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(names)-i)
		names[i], names[j] = names[j], names[i]
	}
	out := names[:n]

	found := false
	for _, name := range out {
		if name == correct {
			found = true
			break
		}
	}
	if !found {
		out[n-1] = correct
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
