package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	"parc-system/pkg/types"
	"parc-system/pkg/utils"
)

type UtilisateurServiceInterface interface {
	ListUtilisateurs(ctx context.Context, filter types.Filter) ([]dto.UtilisateurDTO, uint64, error)
	FindUtilisateur(ctx context.Context, id string) (*dto.UtilisateurDTO, error)
	CreateUtilisateur(ctx context.Context, payload dto.CreateUtilisateurDTO) (*dto.UtilisateurDTO, error)
	UpdateUtilisateur(ctx context.Context, id string, payload dto.UpdateUtilisateurDTO) (*dto.UtilisateurDTO, error)
	DeleteUtilisateur(ctx context.Context, id string) error
}

type UtilisateurService struct {
	utilisateurRepo repositories.UtilisateurRepositoryInterface
}

func NewUtilisateurService(utilisateurRepo repositories.UtilisateurRepositoryInterface) UtilisateurServiceInterface {
	return &UtilisateurService{utilisateurRepo: utilisateurRepo}
}

func (s *UtilisateurService) ListUtilisateurs(ctx context.Context, filter types.Filter) ([]dto.UtilisateurDTO, uint64, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	utilisateurs, total, err := s.utilisateurRepo.ListUtilisateurs(ctx, ownerID, filter)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.UtilisateurDTO, 0, len(utilisateurs))
	for i := range utilisateurs {
		list = append(list, *utilisateurToDTO(&utilisateurs[i]))
	}
	return list, total, nil
}

func (s *UtilisateurService) FindUtilisateur(ctx context.Context, id string) (*dto.UtilisateurDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	utilisateur, err := s.utilisateurRepo.FindUtilisateur(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return utilisateurToDTO(utilisateur), nil
}

func (s *UtilisateurService) CreateUtilisateur(ctx context.Context, payload dto.CreateUtilisateurDTO) (*dto.UtilisateurDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	statut := payload.Statut
	if statut == "" {
		statut = entities.UtilisateurActif
	}

	utilisateur := &entities.Utilisateur{
		ID:        uuid.New().String(),
		Prenom:    payload.Prenom,
		Nom:       payload.Nom,
		Email:     payload.Email,
		Telephone: null.StringFromPtr(payload.Telephone),
		Service:   payload.Service,
		Poste:     payload.Poste,
		Statut:    statut,
		OwnerID:   ownerID,
	}

	if err := s.utilisateurRepo.CreateUtilisateur(ctx, utilisateur); err != nil {
		return nil, err
	}

	created, err := s.utilisateurRepo.FindUtilisateur(ctx, ownerID, utilisateur.ID)
	if err != nil {
		return nil, err
	}
	return utilisateurToDTO(created), nil
}

func (s *UtilisateurService) UpdateUtilisateur(ctx context.Context, id string, payload dto.UpdateUtilisateurDTO) (*dto.UtilisateurDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	utilisateur, err := s.utilisateurRepo.FindUtilisateur(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if payload.Prenom != nil {
		utilisateur.Prenom = *payload.Prenom
	}
	if payload.Nom != nil {
		utilisateur.Nom = *payload.Nom
	}
	if payload.Email != nil {
		utilisateur.Email = *payload.Email
	}
	if payload.Telephone != nil {
		utilisateur.Telephone = null.StringFromPtr(payload.Telephone)
	}
	if payload.Service != nil {
		utilisateur.Service = *payload.Service
	}
	if payload.Poste != nil {
		utilisateur.Poste = *payload.Poste
	}
	if payload.Statut != nil {
		utilisateur.Statut = *payload.Statut
	}

	if err := s.utilisateurRepo.UpdateUtilisateur(ctx, utilisateur); err != nil {
		return nil, err
	}

	updated, err := s.utilisateurRepo.FindUtilisateur(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return utilisateurToDTO(updated), nil
}

func (s *UtilisateurService) DeleteUtilisateur(ctx context.Context, id string) error {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return err
	}
	return s.utilisateurRepo.DeleteUtilisateur(ctx, ownerID, id)
}
