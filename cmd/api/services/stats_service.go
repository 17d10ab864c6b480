package services

import (
	"context"

	"lunarly/apperr"
	"lunarly/models"
)

// StatsService reads the per-user counter map. Statistics beyond simple
// arithmetic are out of scope.
type StatsService struct {
	users UserStore
}

func NewStatsService(users UserStore) *StatsService {
	return &StatsService{users: users}
}

func (s *StatsService) Get(ctx context.Context, uid string) (models.Stats, error) {
	stats, err := s.users.Stats(ctx, uid)
	if err != nil {
		return models.Stats{}, apperr.Wrap(apperr.Internal, "failed to load stats", err)
	}
	return stats, nil
}
