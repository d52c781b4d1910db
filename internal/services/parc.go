package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/utils"
)

// Ticket ouvert automatiquement quand un matériel passe directement
// En maintenance, sans passer par une opération de maintenance.
const (
	autoMaintenanceType       = "Maintenance préventive"
	autoMaintenanceTechnicien = "Technicien assigné"
	autoMaintenanceProbleme   = "Maintenance programmée automatiquement"
	autoMaintenanceNotes      = "Maintenance créée automatiquement lors du changement de statut du matériel"
)

func statistiquesCacheKey(ownerID string) string {
	return "dashboard:stats:" + ownerID
}

type ParcServiceInterface interface {
	CreateMateriel(ctx context.Context, payload dto.CreateMaterielDTO) (*dto.MaterielDTO, error)
	UpdateMateriel(ctx context.Context, id string, payload dto.UpdateMaterielDTO) (*dto.MaterielDTO, error)
	DeleteMateriel(ctx context.Context, id string) error

	CreateAttribution(ctx context.Context, payload dto.CreateAttributionDTO) (*dto.AttributionDTO, error)
	UpdateAttribution(ctx context.Context, id string, payload dto.UpdateAttributionDTO) (*dto.AttributionDTO, error)
	DeleteAttribution(ctx context.Context, id string) error

	CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error)
	UpdateMaintenance(ctx context.Context, id string, payload dto.UpdateMaintenanceDTO) (*dto.MaintenanceDTO, error)
	DeleteMaintenance(ctx context.Context, id string) error
}

// ParcService est le moteur de réconciliation des statuts: chaque événement
// du cycle de vie (attribution, maintenance, changement direct) applique
// l'écriture principale et ses répercussions sur le statut du matériel dans
// une seule transaction.
type ParcService struct {
	txManager       repositories.TxManagerInterface
	materielRepo    repositories.MaterielRepositoryInterface
	attributionRepo repositories.AttributionRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	activiteService ActiviteServiceInterface
	cache           repositories.CacheRepositoryInterface
	logger          *zap.Logger
}

func NewParcService(
	txManager repositories.TxManagerInterface,
	materielRepo repositories.MaterielRepositoryInterface,
	attributionRepo repositories.AttributionRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	activiteService ActiviteServiceInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) ParcServiceInterface {
	return &ParcService{
		txManager:       txManager,
		materielRepo:    materielRepo,
		attributionRepo: attributionRepo,
		maintenanceRepo: maintenanceRepo,
		activiteService: activiteService,
		cache:           cache,
		logger:          logger,
	}
}

func (s *ParcService) invalidateStatistiques(ctx context.Context, ownerID string) {
	if err := s.cache.Del(ctx, statistiquesCacheKey(ownerID)); err != nil {
		s.logger.Warn("échec d'invalidation du cache des statistiques", zap.Error(err))
	}
}

func detailsJSON(pairs map[string]string) json.RawMessage {
	raw, err := json.Marshal(pairs)
	if err != nil {
		return nil
	}
	return raw
}

// ----- Matériel -----

func (s *ParcService) CreateMateriel(ctx context.Context, payload dto.CreateMaterielDTO) (*dto.MaterielDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	dateAchat, err := parseDate(payload.DateAchat)
	if err != nil {
		return nil, err
	}
	garantieFin, err := parseDateNull(payload.GarantieFin)
	if err != nil {
		return nil, err
	}

	statut := payload.Statut
	if statut == "" {
		statut = entities.MaterielDisponible
	}

	materiel := &entities.Materiel{
		ID:          uuid.New().String(),
		Nom:         payload.Nom,
		Modele:      payload.Modele,
		NumeroSerie: payload.NumeroSerie,
		Fournisseur: null.StringFromPtr(payload.Fournisseur),
		DateAchat:   dateAchat,
		PrixAchat:   null.Float64FromPtr(payload.PrixAchat),
		GarantieFin: garantieFin,
		Description: null.StringFromPtr(payload.Description),
		Statut:      statut,
		OwnerID:     ownerID,
	}

	if err := s.materielRepo.CreateMateriel(ctx, materiel); err != nil {
		return nil, err
	}

	s.activiteService.Record(ctx, &entities.HistoriqueActivite{
		TypeActivite: entities.ActiviteAcquisition,
		Titre:        "Nouveau matériel ajouté",
		Description:  null.StringFrom(materiel.Nom + " (" + materiel.Modele + ")"),
		MaterielID:   null.StringFrom(materiel.ID),
		OwnerID:      ownerID,
	})
	s.invalidateStatistiques(ctx, ownerID)

	created, err := s.materielRepo.FindMateriel(ctx, ownerID, materiel.ID)
	if err != nil {
		return nil, err
	}
	return materielToDTO(created), nil
}

func (s *ParcService) UpdateMateriel(ctx context.Context, id string, payload dto.UpdateMaterielDTO) (*dto.MaterielDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var ancienStatut string
	var nouveauStatut string

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		materiel, err := s.materielRepo.FindMaterielTx(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		ancienStatut = materiel.Statut

		if payload.Nom != nil {
			materiel.Nom = *payload.Nom
		}
		if payload.Modele != nil {
			materiel.Modele = *payload.Modele
		}
		if payload.NumeroSerie != nil {
			materiel.NumeroSerie = *payload.NumeroSerie
		}
		if payload.Fournisseur != nil {
			materiel.Fournisseur = null.StringFromPtr(payload.Fournisseur)
		}
		if payload.DateAchat != nil {
			dateAchat, err := parseDate(*payload.DateAchat)
			if err != nil {
				return err
			}
			materiel.DateAchat = dateAchat
		}
		if payload.PrixAchat != nil {
			materiel.PrixAchat = null.Float64FromPtr(payload.PrixAchat)
		}
		if payload.GarantieFin != nil {
			garantieFin, err := parseDateNull(payload.GarantieFin)
			if err != nil {
				return err
			}
			materiel.GarantieFin = garantieFin
		}
		if payload.Description != nil {
			materiel.Description = null.StringFromPtr(payload.Description)
		}
		if payload.Statut != nil {
			materiel.Statut = *payload.Statut
		}
		nouveauStatut = materiel.Statut

		if err := s.materielRepo.UpdateMaterielTx(ctx, tx, materiel); err != nil {
			return err
		}

		// Passage direct En maintenance: on ouvre un ticket pour garder la
		// trace de l'intervention.
		if nouveauStatut == entities.MaterielEnMaintenance && ancienStatut != entities.MaterielEnMaintenance {
			ticket := &entities.Maintenance{
				ID:              uuid.New().String(),
				MaterielID:      materiel.ID,
				TypeMaintenance: autoMaintenanceType,
				Probleme:        autoMaintenanceProbleme,
				Technicien:      autoMaintenanceTechnicien,
				DateDebut:       time.Now(),
				Statut:          entities.MaintenanceEnCours,
				Notes:           null.StringFrom(autoMaintenanceNotes),
				OwnerID:         ownerID,
			}
			if err := s.maintenanceRepo.CreateMaintenanceTx(ctx, tx, ticket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if nouveauStatut == entities.MaterielEnMaintenance && ancienStatut != entities.MaterielEnMaintenance {
		s.activiteService.Record(ctx, &entities.HistoriqueActivite{
			TypeActivite: entities.ActiviteMaintenanceDeb,
			Titre:        "Maintenance programmée automatiquement",
			MaterielID:   null.StringFrom(id),
			Details:      detailsJSON(map[string]string{"ancien_statut": ancienStatut, "nouveau_statut": nouveauStatut}),
			OwnerID:      ownerID,
		})
	} else {
		s.activiteService.Record(ctx, &entities.HistoriqueActivite{
			TypeActivite: entities.ActiviteModification,
			Titre:        "Matériel modifié",
			MaterielID:   null.StringFrom(id),
			Details:      detailsJSON(map[string]string{"ancien_statut": ancienStatut, "nouveau_statut": nouveauStatut}),
			OwnerID:      ownerID,
		})
	}
	s.invalidateStatistiques(ctx, ownerID)

	updated, err := s.materielRepo.FindMateriel(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return materielToDTO(updated), nil
}

func (s *ParcService) DeleteMateriel(ctx context.Context, id string) error {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return err
	}

	var nom, numeroSerie string
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		materiel, err := s.materielRepo.FindMaterielTx(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		nom = materiel.Nom
		numeroSerie = materiel.NumeroSerie
		return s.materielRepo.DeleteMaterielTx(ctx, tx, ownerID, id)
	})
	if err != nil {
		return err
	}

	// La référence matériel est volontairement absente: la ligne vient
	// d'être supprimée, seuls le nom et le numéro de série survivent.
	s.activiteService.Record(ctx, &entities.HistoriqueActivite{
		TypeActivite: entities.ActiviteSuppression,
		Titre:        "Matériel supprimé",
		Description:  null.StringFrom(nom),
		Details:      detailsJSON(map[string]string{"nom": nom, "numero_serie": numeroSerie}),
		OwnerID:      ownerID,
	})
	s.invalidateStatistiques(ctx, ownerID)
	return nil
}

// ----- Attributions -----

func (s *ParcService) CreateAttribution(ctx context.Context, payload dto.CreateAttributionDTO) (*dto.AttributionDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	dateAttribution, err := parseDate(payload.DateAttribution)
	if err != nil {
		return nil, err
	}

	statut := payload.Statut
	if statut == "" {
		statut = entities.AttributionActive
	}

	attribution := &entities.Attribution{
		ID:              uuid.New().String(),
		MaterielID:      payload.MaterielID,
		UtilisateurID:   payload.UtilisateurID,
		DateAttribution: dateAttribution,
		Statut:          statut,
		Notes:           null.StringFromPtr(payload.Notes),
		OwnerID:         ownerID,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		materiel, err := s.materielRepo.FindMaterielTx(ctx, tx, ownerID, payload.MaterielID)
		if err != nil {
			return err
		}
		if materiel.Statut != entities.MaterielDisponible {
			return apperrors.ErrConflict
		}
		if err := s.attributionRepo.CreateAttributionTx(ctx, tx, attribution); err != nil {
			return err
		}
		return s.materielRepo.UpdateStatutTx(ctx, tx, ownerID, payload.MaterielID, entities.MaterielAttribue)
	})
	if err != nil {
		return nil, err
	}

	s.activiteService.Record(ctx, &entities.HistoriqueActivite{
		TypeActivite:  entities.ActiviteAttribution,
		Titre:         "Matériel attribué",
		MaterielID:    null.StringFrom(payload.MaterielID),
		UtilisateurID: null.StringFrom(payload.UtilisateurID),
		OwnerID:       ownerID,
	})
	s.invalidateStatistiques(ctx, ownerID)

	return s.attributionRepo.FindAttribution(ctx, ownerID, attribution.ID)
}

func (s *ParcService) UpdateAttribution(ctx context.Context, id string, payload dto.UpdateAttributionDTO) (*dto.AttributionDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var retourEffectue bool
	var materielID, utilisateurID string

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		attribution, err := s.attributionRepo.FindAttributionTx(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		materielID = attribution.MaterielID
		utilisateurID = attribution.UtilisateurID
		ancienStatut := attribution.Statut

		if payload.DateAttribution != nil {
			dateAttribution, err := parseDate(*payload.DateAttribution)
			if err != nil {
				return err
			}
			attribution.DateAttribution = dateAttribution
		}
		if payload.DateRetour != nil {
			dateRetour, err := parseDateNull(payload.DateRetour)
			if err != nil {
				return err
			}
			attribution.DateRetour = dateRetour
		}
		if payload.Statut != nil {
			attribution.Statut = *payload.Statut
		}
		if payload.Notes != nil {
			attribution.Notes = null.StringFromPtr(payload.Notes)
		}

		retourEffectue = attribution.Statut == entities.AttributionRetournee && ancienStatut != entities.AttributionRetournee
		if retourEffectue && !attribution.DateRetour.Valid {
			attribution.DateRetour = null.TimeFrom(time.Now())
		}

		if err := s.attributionRepo.UpdateAttributionTx(ctx, tx, attribution); err != nil {
			return err
		}

		// Seul le retour libère le matériel; Actif ↔ En attente ne touche
		// pas au statut du matériel.
		if retourEffectue {
			return s.materielRepo.UpdateStatutTx(ctx, tx, ownerID, attribution.MaterielID, entities.MaterielDisponible)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if retourEffectue {
		s.activiteService.Record(ctx, &entities.HistoriqueActivite{
			TypeActivite:  entities.ActiviteRetour,
			Titre:         "Matériel retourné",
			MaterielID:    null.StringFrom(materielID),
			UtilisateurID: null.StringFrom(utilisateurID),
			OwnerID:       ownerID,
		})
	}
	s.invalidateStatistiques(ctx, ownerID)

	return s.attributionRepo.FindAttribution(ctx, ownerID, id)
}

func (s *ParcService) DeleteAttribution(ctx context.Context, id string) error {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return err
	}

	var materielID string
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		attribution, err := s.attributionRepo.FindAttributionTx(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		materielID = attribution.MaterielID

		if err := s.attributionRepo.DeleteAttributionTx(ctx, tx, ownerID, id); err != nil {
			return err
		}

		// Une attribution déjà retournée ne doit pas rejouer la libération:
		// le matériel peut depuis avoir été réattribué ou mis en maintenance.
		if attribution.Statut == entities.AttributionActive {
			return s.materielRepo.UpdateStatutTx(ctx, tx, ownerID, attribution.MaterielID, entities.MaterielDisponible)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.activiteService.Record(ctx, &entities.HistoriqueActivite{
		TypeActivite: entities.ActiviteSuppression,
		Titre:        "Attribution supprimée",
		MaterielID:   null.StringFrom(materielID),
		OwnerID:      ownerID,
	})
	s.invalidateStatistiques(ctx, ownerID)
	return nil
}

// ----- Maintenance -----

// cascadeStatutMaintenance donne le statut matériel induit par un statut de
// maintenance. Total sur les quatre statuts.
func cascadeStatutMaintenance(statutMaintenance string) string {
	switch statutMaintenance {
	case entities.MaintenanceEnCours, entities.MaintenancePlanifiee:
		return entities.MaterielEnMaintenance
	default:
		return entities.MaterielDisponible
	}
}

func (s *ParcService) CreateMaintenance(ctx context.Context, payload dto.CreateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	dateDebut, err := parseDate(payload.DateDebut)
	if err != nil {
		return nil, err
	}
	dateFin, err := parseDateNull(payload.DateFin)
	if err != nil {
		return nil, err
	}

	statut := payload.Statut
	if statut == "" {
		statut = entities.MaintenancePlanifiee
	}

	maintenance := &entities.Maintenance{
		ID:              uuid.New().String(),
		MaterielID:      payload.MaterielID,
		TypeMaintenance: payload.TypeMaintenance,
		Probleme:        payload.Probleme,
		Technicien:      payload.Technicien,
		DateDebut:       dateDebut,
		DateFin:         dateFin,
		Statut:          statut,
		Cout:            null.Float64FromPtr(payload.Cout),
		Notes:           null.StringFromPtr(payload.Notes),
		OwnerID:         ownerID,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.materielRepo.FindMaterielTx(ctx, tx, ownerID, payload.MaterielID); err != nil {
			return err
		}
		if err := s.maintenanceRepo.CreateMaintenanceTx(ctx, tx, maintenance); err != nil {
			return err
		}
		if statut == entities.MaintenanceEnCours || statut == entities.MaintenancePlanifiee {
			return s.materielRepo.UpdateStatutTx(ctx, tx, ownerID, payload.MaterielID, entities.MaterielEnMaintenance)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.activiteService.Record(ctx, &entities.HistoriqueActivite{
		TypeActivite: entities.ActiviteMaintenanceDeb,
		Titre:        "Maintenance " + statut,
		Description:  null.StringFrom(payload.Probleme),
		MaterielID:   null.StringFrom(payload.MaterielID),
		OwnerID:      ownerID,
	})
	s.invalidateStatistiques(ctx, ownerID)

	return s.maintenanceRepo.FindMaintenance(ctx, ownerID, maintenance.ID)
}

func (s *ParcService) UpdateMaintenance(ctx context.Context, id string, payload dto.UpdateMaintenanceDTO) (*dto.MaintenanceDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var terminee bool
	var materielID string

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		maintenance, err := s.maintenanceRepo.FindMaintenanceTx(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		materielID = maintenance.MaterielID
		ancienStatut := maintenance.Statut

		if payload.TypeMaintenance != nil {
			maintenance.TypeMaintenance = *payload.TypeMaintenance
		}
		if payload.Probleme != nil {
			maintenance.Probleme = *payload.Probleme
		}
		if payload.Technicien != nil {
			maintenance.Technicien = *payload.Technicien
		}
		if payload.DateDebut != nil {
			dateDebut, err := parseDate(*payload.DateDebut)
			if err != nil {
				return err
			}
			maintenance.DateDebut = dateDebut
		}
		if payload.DateFin != nil {
			dateFin, err := parseDateNull(payload.DateFin)
			if err != nil {
				return err
			}
			maintenance.DateFin = dateFin
		}
		if payload.Statut != nil {
			maintenance.Statut = *payload.Statut
		}
		if payload.Cout != nil {
			maintenance.Cout = null.Float64FromPtr(payload.Cout)
		}
		if payload.Notes != nil {
			maintenance.Notes = null.StringFromPtr(payload.Notes)
		}

		terminee = maintenance.Statut == entities.MaintenanceTerminee && ancienStatut != entities.MaintenanceTerminee
		if terminee && !maintenance.DateFin.Valid {
			maintenance.DateFin = null.TimeFrom(time.Now())
		}

		if err := s.maintenanceRepo.UpdateMaintenanceTx(ctx, tx, maintenance); err != nil {
			return err
		}
		return s.materielRepo.UpdateStatutTx(ctx, tx, ownerID, maintenance.MaterielID, cascadeStatutMaintenance(maintenance.Statut))
	})
	if err != nil {
		return nil, err
	}

	if terminee {
		s.activiteService.Record(ctx, &entities.HistoriqueActivite{
			TypeActivite: entities.ActiviteMaintenanceFin,
			Titre:        "Maintenance terminée",
			MaterielID:   null.StringFrom(materielID),
			OwnerID:      ownerID,
		})
	}
	s.invalidateStatistiques(ctx, ownerID)

	return s.maintenanceRepo.FindMaintenance(ctx, ownerID, id)
}

func (s *ParcService) DeleteMaintenance(ctx context.Context, id string) error {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return err
	}

	var materielID string
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		maintenance, err := s.maintenanceRepo.FindMaintenanceTx(ctx, tx, ownerID, id)
		if err != nil {
			return err
		}
		materielID = maintenance.MaterielID

		if err := s.maintenanceRepo.DeleteMaintenanceTx(ctx, tx, ownerID, id); err != nil {
			return err
		}

		// Seule la suppression d'un ticket encore ouvert libère le matériel.
		if maintenance.Statut == entities.MaintenanceEnCours || maintenance.Statut == entities.MaintenancePlanifiee {
			return s.materielRepo.UpdateStatutTx(ctx, tx, ownerID, maintenance.MaterielID, entities.MaterielDisponible)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.activiteService.Record(ctx, &entities.HistoriqueActivite{
		TypeActivite: entities.ActiviteSuppression,
		Titre:        "Maintenance supprimée",
		MaterielID:   null.StringFrom(materielID),
		OwnerID:      ownerID,
	})
	s.invalidateStatistiques(ctx, ownerID)
	return nil
}
