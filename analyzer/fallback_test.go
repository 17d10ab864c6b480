package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunarly/analyzer"
	"lunarly/models"
)

func themeSymbols(ins *models.Insights) []string {
	out := make([]string, 0, len(ins.Themes))
	for _, th := range ins.Themes {
		out = append(out, th.Symbol)
	}
	return out
}

func TestGenerateFallbackFallingIntoWater(t *testing.T) {
	ins := analyzer.GenerateFallback("Falling", "I was falling from a bridge into water")

	symbols := themeSymbols(ins)
	assert.Contains(t, symbols, "Flight/Falling")
	assert.Contains(t, symbols, "Water")
	assert.GreaterOrEqual(t, len(ins.Themes), 3)

	assert.Contains(t, ins.MoodTags, "adventurous")
	assert.Contains(t, ins.MoodTags, "anxious")
	assert.Contains(t, ins.MoodTags, "emotional")
	assert.Contains(t, ins.MoodTags, "flowing")

	assert.Len(t, ins.Takeaway, 3)
	assert.Contains(t, ins.Summary, "Falling")
	assert.NotEmpty(t, ins.Disclaimer)
}

func TestGenerateFallbackMoodTagsDeduplicated(t *testing.T) {
	// "falling" and "chase" both contribute "anxious".
	ins := analyzer.GenerateFallback("x", "falling while a chase was happening")

	seen := map[string]int{}
	for _, m := range ins.MoodTags {
		seen[m]++
	}
	for mood, n := range seen {
		if n > 1 {
			t.Fatalf("mood tag %q appears %d times", mood, n)
		}
	}
	assert.Equal(t, 1, seen["anxious"])
}

func TestGenerateFallbackNoKeywordMatch(t *testing.T) {
	ins := analyzer.GenerateFallback("Quiet", "nothing notable happened at all")

	require.GreaterOrEqual(t, len(ins.Themes), 3)
	assert.Len(t, ins.Takeaway, 3)
	assert.NotEmpty(t, ins.MoodTags)
	assert.NotEmpty(t, ins.Summary)
}

func TestGenerateFallbackMinimumThemesInvariant(t *testing.T) {
	bodies := []string{
		"",
		"water",
		"water and flying",
		"water, flying, my house, and a chase",
		"running through rooms by the river",
	}
	for _, body := range bodies {
		ins := analyzer.GenerateFallback("t", body)
		if len(ins.Themes) < 3 {
			t.Fatalf("body %q produced only %d themes", body, len(ins.Themes))
		}
		if len(ins.Takeaway) != 3 {
			t.Fatalf("body %q produced %d takeaway entries", body, len(ins.Takeaway))
		}
	}
}

func TestGenerateFallbackDeterministic(t *testing.T) {
	a := analyzer.GenerateFallback("Falling", "falling into water")
	b := analyzer.GenerateFallback("Falling", "falling into water")
	assert.Equal(t, a, b)
}

func TestGenerateFallbackKeywordCase(t *testing.T) {
	ins := analyzer.GenerateFallback("Ocean", "The OCEAN was everywhere")
	assert.Contains(t, themeSymbols(ins), "Water")
}
