// Package events defines the payloads carried on the event bus.
package events

import "time"

const (
	TypeDreamCreated      = "dream.created"
	TypeDreamDeleted      = "dream.deleted"
	TypeAnalysisCompleted = "analysis.completed"
)

type DreamCreated struct {
	UID        string    `json:"uid"`
	DreamID    string    `json:"dream_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type DreamDeleted struct {
	UID        string    `json:"uid"`
	DreamID    string    `json:"dream_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type AnalysisCompleted struct {
	UID          string    `json:"uid"`
	DreamID      string    `json:"dream_id"`
	AnalysisID   string    `json:"analysis_id"`
	ModelVersion string    `json:"model_version"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// StatsRelevant payloads all carry a uid; consumers only need it to know
// whose counters to recompute.
type UIDOnly struct {
	UID string `json:"uid"`
}
