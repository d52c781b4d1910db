package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	"parc-system/pkg/utils"
)

type ActiviteServiceInterface interface {
	Record(ctx context.Context, activite *entities.HistoriqueActivite)
	ListActivites(ctx context.Context, limit int) ([]dto.ActiviteDTO, error)
	PurgeActivites(ctx context.Context) error
}

// ActiviteService alimente et sert le journal d'activités. Le journal est
// en lecture seule pour les clients: une entrée ne se modifie jamais.
type ActiviteService struct {
	activiteRepo repositories.ActiviteRepositoryInterface
	logger       *zap.Logger
}

func NewActiviteService(activiteRepo repositories.ActiviteRepositoryInterface, logger *zap.Logger) ActiviteServiceInterface {
	return &ActiviteService{activiteRepo: activiteRepo, logger: logger}
}

// Record écrit une entrée d'historique en best-effort: un échec est journalisé
// mais ne fait jamais échouer l'opération métier qui vient de réussir.
func (s *ActiviteService) Record(ctx context.Context, a *entities.HistoriqueActivite) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.DateActivite.IsZero() {
		a.DateActivite = time.Now()
	}

	if err := s.activiteRepo.CreateActivite(ctx, a); err != nil {
		s.logger.Error("échec d'écriture dans l'historique d'activités",
			zap.String("type_activite", a.TypeActivite),
			zap.String("titre", a.Titre),
			zap.Error(err),
		)
	}
}

func (s *ActiviteService) ListActivites(ctx context.Context, limit int) ([]dto.ActiviteDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.activiteRepo.ListActivites(ctx, ownerID, limit)
}

func (s *ActiviteService) PurgeActivites(ctx context.Context) error {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return err
	}
	return s.activiteRepo.DeleteAllActivites(ctx, ownerID)
}
