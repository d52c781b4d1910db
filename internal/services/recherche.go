package services

import (
	"context"
	"strings"

	"parc-system/internal/dto"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/types"
)

// La recherche globale plafonne chaque famille de résultats.
const rechercheLimite = 20

// Familles cherchables; "all" (ou vide) les interroge toutes.
const (
	RechercheToutes       = "all"
	RechercheMateriel     = "materiel"
	RechercheUtilisateurs = "utilisateurs"
	RechercheAttributions = "attributions"
	RechercheMaintenance  = "maintenance"
	RechercheIncidents    = "incidents"
)

type RechercheServiceInterface interface {
	Rechercher(ctx context.Context, terme string, famille string) (*dto.RechercheResultatDTO, error)
}

// RechercheService interroge les familles cherchables avec le même terme et
// regroupe les correspondances, famille par famille.
type RechercheService struct {
	materielService    MaterielServiceInterface
	utilisateurService UtilisateurServiceInterface
	attributionService AttributionServiceInterface
	maintenanceService MaintenanceServiceInterface
	incidentService    IncidentServiceInterface
}

func NewRechercheService(
	materielService MaterielServiceInterface,
	utilisateurService UtilisateurServiceInterface,
	attributionService AttributionServiceInterface,
	maintenanceService MaintenanceServiceInterface,
	incidentService IncidentServiceInterface,
) RechercheServiceInterface {
	return &RechercheService{
		materielService:    materielService,
		utilisateurService: utilisateurService,
		attributionService: attributionService,
		maintenanceService: maintenanceService,
		incidentService:    incidentService,
	}
}

func (s *RechercheService) Rechercher(ctx context.Context, terme string, famille string) (*dto.RechercheResultatDTO, error) {
	terme = strings.TrimSpace(terme)
	if terme == "" {
		return nil, apperrors.NewInvalidInputError("le terme de recherche est obligatoire")
	}

	if famille == "" {
		famille = RechercheToutes
	}
	switch famille {
	case RechercheToutes, RechercheMateriel, RechercheUtilisateurs,
		RechercheAttributions, RechercheMaintenance, RechercheIncidents:
	default:
		return nil, apperrors.NewInvalidInputError("famille de recherche inconnue: %q", famille)
	}

	voulue := func(f string) bool { return famille == RechercheToutes || famille == f }
	filter := types.Filter{Search: terme, Limit: rechercheLimite}
	resultat := &dto.RechercheResultatDTO{}
	var err error

	if voulue(RechercheMateriel) {
		if resultat.Materiels, _, err = s.materielService.ListMateriels(ctx, filter); err != nil {
			return nil, err
		}
	}
	if voulue(RechercheUtilisateurs) {
		if resultat.Utilisateurs, _, err = s.utilisateurService.ListUtilisateurs(ctx, filter); err != nil {
			return nil, err
		}
	}
	if voulue(RechercheAttributions) {
		if resultat.Attributions, _, err = s.attributionService.ListAttributions(ctx, filter); err != nil {
			return nil, err
		}
	}
	if voulue(RechercheMaintenance) {
		if resultat.Maintenances, _, err = s.maintenanceService.ListMaintenances(ctx, filter); err != nil {
			return nil, err
		}
	}
	if voulue(RechercheIncidents) {
		if resultat.Incidents, _, err = s.incidentService.ListIncidents(ctx, filter); err != nil {
			return nil, err
		}
	}

	return resultat, nil
}
