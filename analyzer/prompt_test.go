package analyzer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lunarly/analyzer"
	"lunarly/models"
)

func TestBuildPromptEmbedsTitleAndBodyVerbatim(t *testing.T) {
	cases := []struct {
		name  string
		title string
		body  string
	}{
		{"both set", "Falling", "I was falling from a bridge into water"},
		{"empty title", "", "just a body"},
		{"empty body", "just a title", ""},
		{"both empty", "", ""},
		{"quotes and braces", `a "strange" {dream}`, `it had {braces} inside`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prompt := analyzer.BuildPrompt(&models.Dream{Title: tc.title, Body: tc.body})
			assert.Contains(t, prompt, tc.title)
			assert.Contains(t, prompt, tc.body)
			assert.Contains(t, prompt, `"summary"`)
			assert.Contains(t, prompt, `"themes"`)
			assert.Contains(t, prompt, `"moodTags"`)
			assert.Contains(t, prompt, `"takeaway"`)
		})
	}
}

func TestBuildPromptIncludesDateWhenSet(t *testing.T) {
	d := &models.Dream{
		Title: "Falling",
		Body:  "I was falling",
		Date:  time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	prompt := analyzer.BuildPrompt(d)
	assert.Contains(t, prompt, "August 1, 2025")

	noDate := analyzer.BuildPrompt(&models.Dream{Title: "Falling", Body: "I was falling"})
	if strings.Contains(noDate, "January 1, 0001") {
		t.Fatalf("zero date leaked into prompt: %q", noDate)
	}
}
