package analyzer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunarly/analyzer"
)

func TestParseInsightsExtractsObjectFromProse(t *testing.T) {
	raw := "Sure! Here is your analysis:\n```json\n" +
		`{"summary":"A dream about water.","themes":[{"symbol":"Water","interpretation":"emotion"}],"moodTags":["calm"],"takeaway":["a","b","c"]}` +
		"\n```\nHope that helps!"

	ins, err := analyzer.ParseInsights(raw)
	require.NoError(t, err)
	assert.Equal(t, "A dream about water.", ins.Summary)
	require.Len(t, ins.Themes, 1)
	assert.Equal(t, "Water", ins.Themes[0].Symbol)
	assert.Equal(t, "emotion", ins.Themes[0].Interpretation)
	assert.Equal(t, []string{"calm"}, ins.MoodTags)
	assert.Equal(t, []string{"a", "b", "c"}, ins.Takeaway)
}

func TestParseInsightsBareObject(t *testing.T) {
	ins, err := analyzer.ParseInsights(`{"summary":"s","themes":[],"moodTags":[],"takeaway":[]}`)
	require.NoError(t, err)
	assert.Equal(t, "s", ins.Summary)
}

func TestParseInsightsNoBraces(t *testing.T) {
	_, err := analyzer.ParseInsights("I cannot help with that.")
	if !errors.Is(err, analyzer.ErrNoInsights) {
		t.Fatalf("expected ErrNoInsights, got %v", err)
	}
}

func TestParseInsightsMalformedJSON(t *testing.T) {
	_, err := analyzer.ParseInsights(`prefix {"summary": "unterminated} suffix`)
	if !errors.Is(err, analyzer.ErrNoInsights) {
		t.Fatalf("expected ErrNoInsights, got %v", err)
	}
}

func TestParseInsightsRejectsEmptyPayload(t *testing.T) {
	_, err := analyzer.ParseInsights(`{}`)
	if !errors.Is(err, analyzer.ErrNoInsights) {
		t.Fatalf("expected ErrNoInsights for empty object, got %v", err)
	}
}

func TestParseInsightsDefaultsMissingLists(t *testing.T) {
	ins, err := analyzer.ParseInsights(`{"summary":"only a summary"}`)
	require.NoError(t, err)
	assert.NotNil(t, ins.Themes)
	assert.NotNil(t, ins.MoodTags)
	assert.NotNil(t, ins.Takeaway)
}

// The greedy span runs from the first '{' to the last '}', so two
// adjacent objects are not parseable. That failure must be deterministic.
func TestParseInsightsGreedySpanTwoObjects(t *testing.T) {
	_, err := analyzer.ParseInsights(`{"summary":"a"} {"summary":"b"}`)
	if !errors.Is(err, analyzer.ErrNoInsights) {
		t.Fatalf("expected ErrNoInsights, got %v", err)
	}
}
