package dto

import (
	"time"

	"lunarly/models"
)

// AnalyzeDreamRequestDTO is the body of POST /analyses, mirroring the
// remote-callable contract {dreamId, uid}.
type AnalyzeDreamRequestDTO struct {
	DreamID string `json:"dreamId" example:"66a1f0c2b4f7a93d2c9d4e10"`
	UID     string `json:"uid" example:"user-001"`
}

// AnalyzeDreamResponseDTO is the success shape of POST /analyses.
type AnalyzeDreamResponseDTO struct {
	AnalysisID string          `json:"analysisId"`
	Insights   models.Insights `json:"insights"`
	ModelUsed  string          `json:"modelUsed"`
}

// AnalysisDTO is the public shape of one stored analysis.
type AnalysisDTO struct {
	ID           string          `json:"id"`
	DreamID      string          `json:"dreamId"`
	Insights     models.Insights `json:"insights"`
	CreatedAt    time.Time       `json:"createdAt"`
	ModelVersion string          `json:"modelVersion"`
}

func AnalysisFromModel(a *models.Analysis) AnalysisDTO {
	return AnalysisDTO{
		ID:           a.ID.Hex(),
		DreamID:      a.DreamID.Hex(),
		Insights:     a.Insights,
		CreatedAt:    a.CreatedAt,
		ModelVersion: a.ModelVersion,
	}
}
