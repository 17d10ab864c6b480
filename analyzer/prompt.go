// Package analyzer implements the dream-analysis pipeline: building the
// model prompt, invoking the model provider with ranked fallback, parsing
// the semi-structured reply, and generating a deterministic fallback
// interpretation when the model's reply cannot be used.
package analyzer

import (
	"fmt"

	"lunarly/models"
)

const promptTemplate = `Analyze this dream for personal reflection (not medical advice). Provide JSON only:
{
  "summary": "2-3 sentence summary",
  "themes": [{"symbol":"key symbol", "interpretation":"brief meaning"}],
  "moodTags": ["primary", "secondary", "moods"],
  "takeaway": ["actionable insight 1", "insight 2", "insight 3"]
}

`

// BuildPrompt maps a dream to the instruction string sent to the model.
// Title and body are embedded verbatim; the dream date is included when
// set. Pure, no side effects.
func BuildPrompt(d *models.Dream) string {
	if d.Date.IsZero() {
		return promptTemplate + fmt.Sprintf("Dream: %s - %s", d.Title, d.Body)
	}
	return promptTemplate + fmt.Sprintf("Dream (%s): %s - %s", d.Date.Format("January 2, 2006"), d.Title, d.Body)
}
