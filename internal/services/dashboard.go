package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/repositories"
	"parc-system/pkg/utils"
)

// Les statistiques sont recalculées au plus toutes les cacheStatistiquesTTL,
// et invalidées explicitement à chaque mutation du parc.
const cacheStatistiquesTTL = time.Minute

type DashboardServiceInterface interface {
	GetStatistiques(ctx context.Context) (*dto.StatistiquesDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, cache: cache, logger: logger}
}

func (s *DashboardService) GetStatistiques(ctx context.Context) (*dto.StatistiquesDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	key := statistiquesCacheKey(ownerID)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var stats dto.StatistiquesDTO
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
		s.logger.Warn("entrée de cache des statistiques illisible, recalcul", zap.String("key", key))
	} else if !errors.Is(err, repositories.ErrCacheMiss) {
		s.logger.Warn("cache des statistiques indisponible", zap.Error(err))
	}

	stats, err := s.dashboardRepo.GetStatistiques(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, raw, cacheStatistiquesTTL); err != nil {
			s.logger.Warn("échec d'écriture du cache des statistiques", zap.Error(err))
		}
	}
	return stats, nil
}
