package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"lunarly/models"
)

// ErrNoInsights is returned when no usable JSON payload can be extracted
// from the model's reply. Callers route this to the fallback generator
// rather than failing the request.
var ErrNoInsights = errors.New("no insights payload in model response")

// ParseInsights extracts a single JSON object from the model's free-text
// reply: the span from the first '{' through the last '}' is decoded as
// JSON. Models wrap the payload in prose or markdown fences often enough
// that decoding the whole reply directly is not viable.
func ParseInsights(raw string) (*models.Insights, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoInsights
	}

	var ins models.Insights
	if err := json.Unmarshal([]byte(raw[start:end+1]), &ins); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoInsights, err)
	}

	// Validate-and-coerce: the reply is untrusted data. A payload with
	// no summary and no themes is rejected; absent lists are defaulted
	// so downstream code never sees nil.
	if ins.Summary == "" && len(ins.Themes) == 0 {
		return nil, fmt.Errorf("%w: payload has neither summary nor themes", ErrNoInsights)
	}
	if ins.Themes == nil {
		ins.Themes = []models.Theme{}
	}
	if ins.MoodTags == nil {
		ins.MoodTags = []string{}
	}
	if ins.Takeaway == nil {
		ins.Takeaway = []string{}
	}

	return &ins, nil
}
