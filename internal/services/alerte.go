package services

import (
	"context"
	"fmt"
	"time"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	"parc-system/pkg/utils"
)

// Fenêtre d'annonce des maintenances planifiées.
const fenetreMaintenancePrevue = 7 * 24 * time.Hour

type AlerteServiceInterface interface {
	GetAlertes(ctx context.Context) ([]dto.AlerteDTO, error)
}

type AlerteService struct {
	materielRepo    repositories.MaterielRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	preferenceRepo  repositories.PreferenceRepositoryInterface
}

func NewAlerteService(
	materielRepo repositories.MaterielRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	preferenceRepo repositories.PreferenceRepositoryInterface,
) AlerteServiceInterface {
	return &AlerteService{
		materielRepo:    materielRepo,
		maintenanceRepo: maintenanceRepo,
		preferenceRepo:  preferenceRepo,
	}
}

func (s *AlerteService) GetAlertes(ctx context.Context) ([]dto.AlerteDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	materiels, err := s.materielRepo.ListAllMateriels(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	maintenances, err := s.maintenanceRepo.ListAllMaintenances(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	preference, err := s.preferenceRepo.FindPreference(ctx, ownerID)
	if err != nil {
		preference = entities.DefaultPreference(ownerID)
	}

	return CalculerAlertes(time.Now(), materiels, maintenances, preference), nil
}

// CalculerAlertes dérive les alertes d'un instantané du parc à l'instant
// now. Fonction pure: aucune lecture ni écriture.
func CalculerAlertes(now time.Time, materiels []entities.Materiel, maintenances []entities.Maintenance, preference *entities.Preference) []dto.AlerteDTO {
	alertes := []dto.AlerteDTO{}

	materielsParID := make(map[string]*entities.Materiel, len(materiels))
	for i := range materiels {
		materielsParID[materiels[i].ID] = &materiels[i]
	}

	shortMateriel := func(m *entities.Materiel) *dto.ShortMaterielDTO {
		if m == nil {
			return nil
		}
		return materielToShortDTO(m)
	}

	if preference == nil || preference.AlertesGarantie {
		for i := range materiels {
			m := &materiels[i]
			if m.GarantieFin.Valid && m.GarantieFin.Time.Before(now) {
				dateLimite := m.GarantieFin.Time.Format(dateLayout)
				alertes = append(alertes, dto.AlerteDTO{
					Type:       dto.AlerteGarantieExpiree,
					Severite:   dto.SeveriteAlerte,
					Titre:      "Garantie expirée",
					Message:    fmt.Sprintf("La garantie de %s (%s) a expiré le %s", m.Nom, m.NumeroSerie, dateLimite),
					Materiel:   shortMateriel(m),
					DateLimite: &dateLimite,
				})
			}
		}
	}

	for i := range materiels {
		m := &materiels[i]
		switch m.Statut {
		case entities.MaterielHorsService:
			alertes = append(alertes, dto.AlerteDTO{
				Type:     dto.AlerteMaterielHorsService,
				Severite: dto.SeveriteCritique,
				Titre:    "Matériel hors service",
				Message:  fmt.Sprintf("%s (%s) est hors service", m.Nom, m.NumeroSerie),
				Materiel: shortMateriel(m),
			})
		case entities.MaterielEnMaintenance:
			alertes = append(alertes, dto.AlerteDTO{
				Type:     dto.AlerteMaterielHorsService,
				Severite: dto.SeveriteInfo,
				Titre:    "Matériel en maintenance",
				Message:  fmt.Sprintf("%s (%s) est en maintenance", m.Nom, m.NumeroSerie),
				Materiel: shortMateriel(m),
			})
		}
	}

	if preference == nil || preference.AlertesMaintenance {
		horizon := now.Add(fenetreMaintenancePrevue)
		for i := range maintenances {
			mt := &maintenances[i]
			if mt.Statut == entities.MaintenanceTerminee {
				continue
			}
			materiel := materielsParID[mt.MaterielID]

			if mt.DateFin.Valid && mt.DateFin.Time.Before(now) {
				dateLimite := mt.DateFin.Time.Format(dateLayout)
				alertes = append(alertes, dto.AlerteDTO{
					Type:       dto.AlerteMaintenanceRetard,
					Severite:   dto.SeveriteCritique,
					Titre:      "Maintenance en retard",
					Message:    fmt.Sprintf("La maintenance %q devait se terminer le %s", mt.Probleme, dateLimite),
					Materiel:   shortMateriel(materiel),
					DateLimite: &dateLimite,
				})
			}

			if !mt.DateDebut.Before(now) && !mt.DateDebut.After(horizon) {
				dateLimite := mt.DateDebut.Format(dateLayout)
				alertes = append(alertes, dto.AlerteDTO{
					Type:       dto.AlerteMaintenancePrevue,
					Severite:   dto.SeveriteInfo,
					Titre:      "Maintenance prévue",
					Message:    fmt.Sprintf("La maintenance %q est prévue le %s", mt.Probleme, dateLimite),
					Materiel:   shortMateriel(materiel),
					DateLimite: &dateLimite,
				})
			}
		}
	}

	return alertes
}
