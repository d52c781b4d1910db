package services

import (
	"context"

	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	"parc-system/pkg/utils"
)

type RapportServiceInterface interface {
	GetInventaire(ctx context.Context) ([]entities.Materiel, error)
}

// RapportService fournit les données brutes du rapport d'inventaire; la mise
// en forme XLSX appartient au contrôleur.
type RapportService struct {
	materielRepo repositories.MaterielRepositoryInterface
}

func NewRapportService(materielRepo repositories.MaterielRepositoryInterface) RapportServiceInterface {
	return &RapportService{materielRepo: materielRepo}
}

func (s *RapportService) GetInventaire(ctx context.Context) ([]entities.Materiel, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.materielRepo.ListAllMateriels(ctx, ownerID)
}
