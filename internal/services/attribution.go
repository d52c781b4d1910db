package services

import (
	"context"

	"parc-system/internal/dto"
	"parc-system/internal/repositories"
	"parc-system/pkg/types"
	"parc-system/pkg/utils"
)

type AttributionServiceInterface interface {
	ListAttributions(ctx context.Context, filter types.Filter) ([]dto.AttributionDTO, uint64, error)
	FindAttribution(ctx context.Context, id string) (*dto.AttributionDTO, error)
}

type AttributionService struct {
	attributionRepo repositories.AttributionRepositoryInterface
}

func NewAttributionService(attributionRepo repositories.AttributionRepositoryInterface) AttributionServiceInterface {
	return &AttributionService{attributionRepo: attributionRepo}
}

func (s *AttributionService) ListAttributions(ctx context.Context, filter types.Filter) ([]dto.AttributionDTO, uint64, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.attributionRepo.ListAttributions(ctx, ownerID, filter)
}

func (s *AttributionService) FindAttribution(ctx context.Context, id string) (*dto.AttributionDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.attributionRepo.FindAttribution(ctx, ownerID, id)
}
