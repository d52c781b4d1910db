package services

import (
	"context"

	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/repositories"
	"parc-system/pkg/types"
	"parc-system/pkg/utils"
)

type MaterielServiceInterface interface {
	ListMateriels(ctx context.Context, filter types.Filter) ([]dto.MaterielDTO, uint64, error)
	FindMateriel(ctx context.Context, id string) (*dto.MaterielDTO, error)
}

// Les mutations du matériel passent par ParcService; ici, uniquement la
// lecture.
type MaterielService struct {
	materielRepo repositories.MaterielRepositoryInterface
	logger       *zap.Logger
}

func NewMaterielService(materielRepo repositories.MaterielRepositoryInterface, logger *zap.Logger) MaterielServiceInterface {
	return &MaterielService{materielRepo: materielRepo, logger: logger}
}

func (s *MaterielService) ListMateriels(ctx context.Context, filter types.Filter) ([]dto.MaterielDTO, uint64, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	materiels, total, err := s.materielRepo.ListMateriels(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.MaterielDTO, 0, len(materiels))
	for i := range materiels {
		list = append(list, *materielToDTO(&materiels[i]))
	}
	return list, total, nil
}

func (s *MaterielService) FindMateriel(ctx context.Context, id string) (*dto.MaterielDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	materiel, err := s.materielRepo.FindMateriel(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return materielToDTO(materiel), nil
}
