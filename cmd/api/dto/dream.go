package dto

import (
	"time"

	"lunarly/models"
)

// CreateDreamRequestDTO is the body of POST /dreams.
type CreateDreamRequestDTO struct {
	Title string    `json:"title" example:"Falling"`
	Body  string    `json:"body" binding:"required" example:"I was falling from a bridge into water"`
	Date  time.Time `json:"date" example:"2025-08-01T00:00:00Z"`
}

// UpdateDreamRequestDTO is the body of PUT /dreams/{id}. Absent fields
// are left unchanged.
type UpdateDreamRequestDTO struct {
	Title *string    `json:"title,omitempty"`
	Body  *string    `json:"body,omitempty"`
	Date  *time.Time `json:"date,omitempty"`
}

// DreamDTO is the public shape of one dream.
type DreamDTO struct {
	ID         string    `json:"id" example:"66a1f0c2b4f7a93d2c9d4e10"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	AnalysisID *string   `json:"analysisId"`
}

func DreamFromModel(d *models.Dream) DreamDTO {
	out := DreamDTO{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.AnalysisID != nil {
		hex := d.AnalysisID.Hex()
		out.AnalysisID = &hex
	}
	return out
}

// ExportedDreamDTO is one element of the bulk export document.
type ExportedDreamDTO struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
