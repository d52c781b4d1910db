package services

import (
	"context"

	"parc-system/internal/dto"
	"parc-system/internal/repositories"
	"parc-system/pkg/types"
	"parc-system/pkg/utils"
)

type MaintenanceServiceInterface interface {
	ListMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error)
	FindMaintenance(ctx context.Context, id string) (*dto.MaintenanceDTO, error)
}

type MaintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepositoryInterface
}

func NewMaintenanceService(maintenanceRepo repositories.MaintenanceRepositoryInterface) MaintenanceServiceInterface {
	return &MaintenanceService{maintenanceRepo: maintenanceRepo}
}

func (s *MaintenanceService) ListMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.maintenanceRepo.ListMaintenances(ctx, ownerID, filter)
}

func (s *MaintenanceService) FindMaintenance(ctx context.Context, id string) (*dto.MaintenanceDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.maintenanceRepo.FindMaintenance(ctx, ownerID, id)
}
