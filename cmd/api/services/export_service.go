package services

import (
	"context"

	"lunarly/apperr"
	"lunarly/cmd/api/dto"
)

// ExportService produces the user-triggered bulk export: every dream of
// the caller as a single JSON array, for data portability.
type ExportService struct {
	dreams DreamStore
}

func NewExportService(dreams DreamStore) *ExportService {
	return &ExportService{dreams: dreams}
}

func (s *ExportService) ExportDreams(ctx context.Context, uid string) ([]dto.ExportedDreamDTO, error) {
	dreams, err := s.dreams.FindByUser(ctx, uid)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to export dreams", err)
	}

	out := make([]dto.ExportedDreamDTO, 0, len(dreams))
	for _, d := range dreams {
		out = append(out, dto.ExportedDreamDTO{
			Title:     d.Title,
			Body:      d.Body,
			Date:      d.Date,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}
