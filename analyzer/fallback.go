package analyzer

import (
	"fmt"
	"strings"

	"lunarly/models"
)

// fallbackDisclaimer marks generator output so the degradation from a
// model-derived analysis is visible to the user, not silent.
const fallbackDisclaimer = "This interpretation was generated without AI assistance and reflects common dream symbolism only."

type keywordRule struct {
	keywords       []string
	symbol         string
	interpretation string
	moods          []string
}

// Intentionally simple pattern matching, not NLP. Each matched rule
// contributes one theme and its mood tags.
var fallbackRules = []keywordRule{
	{
		keywords:       []string{"water", "ocean", "river"},
		symbol:         "Water",
		interpretation: "Water often reflects your emotional state and the currents moving beneath the surface of daily life.",
		moods:          []string{"emotional", "flowing"},
	},
	{
		keywords:       []string{"flying", "falling"},
		symbol:         "Flight/Falling",
		interpretation: "Flying or falling can point to a shifting sense of control, freedom, or vulnerability.",
		moods:          []string{"adventurous", "anxious"},
	},
	{
		keywords:       []string{"house", "home", "room"},
		symbol:         "Home/House",
		interpretation: "Houses and rooms commonly stand in for the self, with each space mirroring a part of your inner life.",
		moods:          []string{"introspective", "grounded"},
	},
	{
		keywords:       []string{"chase", "running"},
		symbol:         "Pursuit",
		interpretation: "Being chased or running frequently signals something in waking life you are avoiding or racing toward.",
		moods:          []string{"anxious", "urgent"},
	},
}

var genericThemes = []models.Theme{
	{Symbol: "The Unknown", Interpretation: "Dreams often explore uncertainty; unfamiliar imagery can mark a question you are still working through."},
	{Symbol: "Change", Interpretation: "Shifting scenes and transformations tend to accompany periods of transition."},
}

var fillerTheme = models.Theme{
	Symbol:         "Reflection",
	Interpretation: "Even ordinary dream details can reward a second look when set beside your waking life.",
}

// GenerateFallback produces a schema-valid Insights value from the dream
// text alone: bounded time, no network, deterministic for a given input.
// Postconditions: at least 3 themes, deduplicated mood tags, exactly 3
// takeaway entries.
func GenerateFallback(title, body string) *models.Insights {
	lower := strings.ToLower(body)

	var themes []models.Theme
	var moods []string
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				themes = append(themes, models.Theme{Symbol: rule.symbol, Interpretation: rule.interpretation})
				moods = append(moods, rule.moods...)
				break
			}
		}
	}

	if len(themes) == 0 {
		themes = append(themes, genericThemes...)
		moods = append(moods, "curious", "reflective")
	}
	for len(themes) < 3 {
		themes = append(themes, fillerTheme)
	}

	return &models.Insights{
		Summary: fmt.Sprintf("Your dream %q weaves together imagery worth sitting with. "+
			"The symbols below are drawn from common dream patterns and are offered as prompts for personal reflection.", title),
		Themes:   themes,
		MoodTags: dedupe(moods),
		Takeaway: []string{
			"Write down how the dream felt, not just what happened.",
			"Notice whether any dream imagery echoes something in your waking life.",
			"Revisit this entry in a week and see what stands out.",
		},
		Disclaimer: fallbackDisclaimer,
	}
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
