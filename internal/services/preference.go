package services

import (
	"context"
	"errors"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/utils"
)

type PreferenceServiceInterface interface {
	GetPreference(ctx context.Context) (*dto.PreferenceDTO, error)
	UpdatePreference(ctx context.Context, payload dto.UpdatePreferenceDTO) (*dto.PreferenceDTO, error)
}

type PreferenceService struct {
	preferenceRepo repositories.PreferenceRepositoryInterface
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepositoryInterface) PreferenceServiceInterface {
	return &PreferenceService{preferenceRepo: preferenceRepo}
}

func preferenceToDTO(p *entities.Preference) *dto.PreferenceDTO {
	return &dto.PreferenceDTO{
		Theme:              p.Theme,
		Langue:             p.Langue,
		NotificationsEmail: p.NotificationsEmail,
		NotificationsPush:  p.NotificationsPush,
		AlertesGarantie:    p.AlertesGarantie,
		AlertesMaintenance: p.AlertesMaintenance,
	}
}

// findOrDefault retourne les réglages enregistrés, ou les valeurs par défaut
// pour un compte qui n'a encore rien modifié.
func (s *PreferenceService) findOrDefault(ctx context.Context, ownerID string) (*entities.Preference, error) {
	preference, err := s.preferenceRepo.FindPreference(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return entities.DefaultPreference(ownerID), nil
		}
		return nil, err
	}
	return preference, nil
}

func (s *PreferenceService) GetPreference(ctx context.Context) (*dto.PreferenceDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	preference, err := s.findOrDefault(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return preferenceToDTO(preference), nil
}

func (s *PreferenceService) UpdatePreference(ctx context.Context, payload dto.UpdatePreferenceDTO) (*dto.PreferenceDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	preference, err := s.findOrDefault(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if payload.Theme != nil {
		preference.Theme = *payload.Theme
	}
	if payload.Langue != nil {
		preference.Langue = *payload.Langue
	}
	if payload.NotificationsEmail != nil {
		preference.NotificationsEmail = *payload.NotificationsEmail
	}
	if payload.NotificationsPush != nil {
		preference.NotificationsPush = *payload.NotificationsPush
	}
	if payload.AlertesGarantie != nil {
		preference.AlertesGarantie = *payload.AlertesGarantie
	}
	if payload.AlertesMaintenance != nil {
		preference.AlertesMaintenance = *payload.AlertesMaintenance
	}

	if err := s.preferenceRepo.UpsertPreference(ctx, preference); err != nil {
		return nil, err
	}
	return preferenceToDTO(preference), nil
}
