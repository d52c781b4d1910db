package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	"parc-system/pkg/types"
	"parc-system/pkg/utils"
)

type IncidentServiceInterface interface {
	ListIncidents(ctx context.Context, filter types.Filter) ([]dto.IncidentDTO, uint64, error)
	FindIncident(ctx context.Context, id string) (*dto.IncidentDTO, error)
	CreateIncident(ctx context.Context, payload dto.CreateIncidentDTO) (*dto.IncidentDTO, error)
	UpdateIncident(ctx context.Context, id string, payload dto.UpdateIncidentDTO) (*dto.IncidentDTO, error)
	DeleteIncident(ctx context.Context, id string) error
}

// Les incidents ne déclenchent aucune cascade sur le statut du matériel:
// un incident ouvert n'immobilise pas l'équipement tant qu'une maintenance
// n'est pas décidée.
type IncidentService struct {
	incidentRepo    repositories.IncidentRepositoryInterface
	activiteService ActiviteServiceInterface
}

func NewIncidentService(incidentRepo repositories.IncidentRepositoryInterface, activiteService ActiviteServiceInterface) IncidentServiceInterface {
	return &IncidentService{incidentRepo: incidentRepo, activiteService: activiteService}
}

func (s *IncidentService) ListIncidents(ctx context.Context, filter types.Filter) ([]dto.IncidentDTO, uint64, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	return s.incidentRepo.ListIncidents(ctx, ownerID, filter)
}

func (s *IncidentService) FindIncident(ctx context.Context, id string) (*dto.IncidentDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.incidentRepo.FindIncident(ctx, ownerID, id)
}

func (s *IncidentService) CreateIncident(ctx context.Context, payload dto.CreateIncidentDTO) (*dto.IncidentDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	priorite := payload.Priorite
	if priorite == "" {
		priorite = entities.PrioriteMoyenne
	}
	if normalisee, ok := entities.NormalizePriorite(priorite); ok {
		priorite = normalisee
	}

	statut := payload.Statut
	if statut == "" {
		statut = entities.IncidentOuvert
	}

	dateCreation := time.Now()
	if payload.DateCreation != nil {
		dateCreation, err = parseDate(*payload.DateCreation)
		if err != nil {
			return nil, err
		}
	}

	incident := &entities.Incident{
		ID:            uuid.New().String(),
		Titre:         payload.Titre,
		Description:   payload.Description,
		Priorite:      priorite,
		Statut:        statut,
		MaterielID:    null.StringFromPtr(payload.MaterielID),
		UtilisateurID: null.StringFromPtr(payload.UtilisateurID),
		DateCreation:  dateCreation,
		OwnerID:       ownerID,
	}

	if err := s.incidentRepo.CreateIncident(ctx, incident); err != nil {
		return nil, err
	}

	s.activiteService.Record(ctx, &entities.HistoriqueActivite{
		TypeActivite:  entities.ActiviteIncident,
		Titre:         "Incident signalé",
		Description:   null.StringFrom(incident.Titre),
		MaterielID:    incident.MaterielID,
		UtilisateurID: incident.UtilisateurID,
		OwnerID:       ownerID,
	})

	return s.incidentRepo.FindIncident(ctx, ownerID, incident.ID)
}

func (s *IncidentService) UpdateIncident(ctx context.Context, id string, payload dto.UpdateIncidentDTO) (*dto.IncidentDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	incident, err := s.incidentRepo.FindIncidentEntity(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	ancienStatut := incident.Statut

	if payload.Titre != nil {
		incident.Titre = *payload.Titre
	}
	if payload.Description != nil {
		incident.Description = *payload.Description
	}
	if payload.Priorite != nil {
		priorite := *payload.Priorite
		if normalisee, ok := entities.NormalizePriorite(priorite); ok {
			priorite = normalisee
		}
		incident.Priorite = priorite
	}
	if payload.Statut != nil {
		incident.Statut = *payload.Statut
	}
	if payload.MaterielID != nil {
		incident.MaterielID = null.StringFromPtr(payload.MaterielID)
	}
	if payload.UtilisateurID != nil {
		incident.UtilisateurID = null.StringFromPtr(payload.UtilisateurID)
	}
	if payload.DateResolution != nil {
		dateResolution, err := parseDateNull(payload.DateResolution)
		if err != nil {
			return nil, err
		}
		incident.DateResolution = dateResolution
	}

	resolu := incident.Statut == entities.IncidentResolu && ancienStatut != entities.IncidentResolu
	if resolu && !incident.DateResolution.Valid {
		incident.DateResolution = null.TimeFrom(time.Now())
	}

	if err := s.incidentRepo.UpdateIncident(ctx, incident); err != nil {
		return nil, err
	}
	return s.incidentRepo.FindIncident(ctx, ownerID, id)
}

func (s *IncidentService) DeleteIncident(ctx context.Context, id string) error {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return err
	}
	return s.incidentRepo.DeleteIncident(ctx, ownerID, id)
}
