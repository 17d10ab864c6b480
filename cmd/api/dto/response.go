package dto

import "lunarly/models"

// ErrorResponseDTO is the uniform error shape: a stable kind plus a
// caller-safe message.
type ErrorResponseDTO struct {
	Error   string `json:"error" example:"permission_denied"`
	Message string `json:"message,omitempty" example:"user can only analyze their own dreams"`
}

// MessageResponseDTO is the uniform simple-message shape.
type MessageResponseDTO struct {
	Message string `json:"message" example:"dream deleted"`
}

// StatsDTO is the response of GET /stats.
type StatsDTO struct {
	TotalDreams  int64 `json:"totalDreams" example:"12"`
	AnalysesUsed int64 `json:"analysesUsed" example:"4"`
}

func StatsFromModel(s models.Stats) StatsDTO {
	return StatsDTO{TotalDreams: s.TotalDreams, AnalysesUsed: s.AnalysesUsed}
}
