package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModelVersionFallback marks analyses produced by the deterministic
// generator instead of a model round trip.
const ModelVersionFallback = "fallback"

// Theme is one symbol/interpretation pair inside Insights.
type Theme struct {
	Symbol         string `bson:"symbol" json:"symbol"`
	Interpretation string `bson:"interpretation" json:"interpretation"`
}

// Insights is the structured interpretation payload.
type Insights struct {
	Summary    string   `bson:"summary" json:"summary"`
	Themes     []Theme  `bson:"themes" json:"themes"`
	MoodTags   []string `bson:"moodTags" json:"moodTags"`
	Takeaway   []string `bson:"takeaway" json:"takeaway"`
	Disclaimer string   `bson:"disclaimer,omitempty" json:"disclaimer,omitempty"`
}

// Analysis is the persisted result of one orchestration run. Created
// exactly once per run and never mutated afterwards.
// Collection: analyses
type Analysis struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID              string             `bson:"uid" json:"-"`
	DreamID          primitive.ObjectID `bson:"dreamId" json:"dreamId"`
	PromptSent       string             `bson:"promptSent" json:"promptSent"`
	RawModelResponse string             `bson:"rawModelResponse" json:"rawModelResponse"`
	Insights         Insights           `bson:"insights" json:"insights"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	ModelVersion     string             `bson:"modelVersion" json:"modelVersion"`
}
