package services

import (
	"context"
	"fmt"

	"github.com/earnbuddy/backend/internal/core/domain"
	portsrepo "github.com/earnbuddy/backend/internal/core/ports/repositories"
	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
)

// statsServiceImpl implements the StatsSvcFacade interface. It is a thin
// pass-through; all aggregation happens in the repository queries.
type statsServiceImpl struct {
	BaseService
	statsRepo portsrepo.StatsRepository
}

// NewStatsService creates a new stats service backed by the given repository.
func NewStatsService(statsRepo portsrepo.StatsRepository) portssvc.StatsSvcFacade {
	return &statsServiceImpl{statsRepo: statsRepo}
}

var _ portssvc.StatsSvcFacade = (*statsServiceImpl)(nil)

func (s *statsServiceImpl) GetWorkerStats(ctx context.Context, workerEmail string) (*domain.WorkerStats, error) {
	stats, err := s.statsRepo.GetWorkerStats(ctx, workerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker stats: %w", err)
	}
	return stats, nil
}

func (s *statsServiceImpl) GetCreatorStats(ctx context.Context, creatorEmail string) (*domain.CreatorStats, error) {
	stats, err := s.statsRepo.GetCreatorStats(ctx, creatorEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get creator stats: %w", err)
	}
	return stats, nil
}

func (s *statsServiceImpl) GetAdminStats(ctx context.Context) (*domain.AdminStats, error) {
	stats, err := s.statsRepo.GetAdminStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin stats: %w", err)
	}
	return stats, nil
}
