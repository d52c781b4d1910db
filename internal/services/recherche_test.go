package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parc-system/internal/dto"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/types"
)

type rechercheMaterielFake struct{ termes []string }

func (f *rechercheMaterielFake) ListMateriels(ctx context.Context, filter types.Filter) ([]dto.MaterielDTO, uint64, error) {
	f.termes = append(f.termes, filter.Search)
	return []dto.MaterielDTO{{ID: "mat-1", Nom: "Dell Latitude"}}, 1, nil
}

func (f *rechercheMaterielFake) FindMateriel(ctx context.Context, id string) (*dto.MaterielDTO, error) {
	return nil, apperrors.ErrNotFound
}

type rechercheUtilisateurFake struct{ appels int }

func (f *rechercheUtilisateurFake) ListUtilisateurs(ctx context.Context, filter types.Filter) ([]dto.UtilisateurDTO, uint64, error) {
	f.appels++
	return []dto.UtilisateurDTO{{ID: "usr-1", Nom: "Dupont"}}, 1, nil
}

func (f *rechercheUtilisateurFake) FindUtilisateur(ctx context.Context, id string) (*dto.UtilisateurDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (f *rechercheUtilisateurFake) CreateUtilisateur(ctx context.Context, payload dto.CreateUtilisateurDTO) (*dto.UtilisateurDTO, error) {
	return nil, nil
}

func (f *rechercheUtilisateurFake) UpdateUtilisateur(ctx context.Context, id string, payload dto.UpdateUtilisateurDTO) (*dto.UtilisateurDTO, error) {
	return nil, nil
}

func (f *rechercheUtilisateurFake) DeleteUtilisateur(ctx context.Context, id string) error {
	return nil
}

type rechercheAttributionFake struct{ appels int }

func (f *rechercheAttributionFake) ListAttributions(ctx context.Context, filter types.Filter) ([]dto.AttributionDTO, uint64, error) {
	f.appels++
	return []dto.AttributionDTO{{ID: "att-1"}}, 1, nil
}

func (f *rechercheAttributionFake) FindAttribution(ctx context.Context, id string) (*dto.AttributionDTO, error) {
	return nil, apperrors.ErrNotFound
}

type rechercheMaintenanceFake struct{ appels int }

func (f *rechercheMaintenanceFake) ListMaintenances(ctx context.Context, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error) {
	f.appels++
	return []dto.MaintenanceDTO{{ID: "mnt-1"}}, 1, nil
}

func (f *rechercheMaintenanceFake) FindMaintenance(ctx context.Context, id string) (*dto.MaintenanceDTO, error) {
	return nil, apperrors.ErrNotFound
}

type rechercheIncidentFake struct{ appels int }

func (f *rechercheIncidentFake) ListIncidents(ctx context.Context, filter types.Filter) ([]dto.IncidentDTO, uint64, error) {
	f.appels++
	return []dto.IncidentDTO{{ID: "inc-1"}}, 1, nil
}

func (f *rechercheIncidentFake) FindIncident(ctx context.Context, id string) (*dto.IncidentDTO, error) {
	return nil, apperrors.ErrNotFound
}

func (f *rechercheIncidentFake) CreateIncident(ctx context.Context, payload dto.CreateIncidentDTO) (*dto.IncidentDTO, error) {
	return nil, nil
}

func (f *rechercheIncidentFake) UpdateIncident(ctx context.Context, id string, payload dto.UpdateIncidentDTO) (*dto.IncidentDTO, error) {
	return nil, nil
}

func (f *rechercheIncidentFake) DeleteIncident(ctx context.Context, id string) error {
	return nil
}

type rechercheFixture struct {
	service      RechercheServiceInterface
	materiels    *rechercheMaterielFake
	utilisateurs *rechercheUtilisateurFake
	attributions *rechercheAttributionFake
	maintenances *rechercheMaintenanceFake
	incidents    *rechercheIncidentFake
}

func newRechercheFixture() *rechercheFixture {
	f := &rechercheFixture{
		materiels:    &rechercheMaterielFake{},
		utilisateurs: &rechercheUtilisateurFake{},
		attributions: &rechercheAttributionFake{},
		maintenances: &rechercheMaintenanceFake{},
		incidents:    &rechercheIncidentFake{},
	}
	f.service = NewRechercheService(f.materiels, f.utilisateurs, f.attributions, f.maintenances, f.incidents)
	return f
}

func TestRechercher_ToutesLesFamilles(t *testing.T) {
	f := newRechercheFixture()

	res, err := f.service.Rechercher(testCtx(), "latitude", "")

	require.NoError(t, err)
	assert.Len(t, res.Materiels, 1)
	assert.Len(t, res.Utilisateurs, 1)
	assert.Len(t, res.Attributions, 1)
	assert.Len(t, res.Maintenances, 1)
	assert.Len(t, res.Incidents, 1)
	assert.Equal(t, []string{"latitude"}, f.materiels.termes, "le terme est transmis tel quel")
}

func TestRechercher_FiltreParFamille(t *testing.T) {
	f := newRechercheFixture()

	res, err := f.service.Rechercher(testCtx(), "latitude", RechercheMaintenance)

	require.NoError(t, err)
	assert.Empty(t, res.Materiels)
	assert.Empty(t, res.Utilisateurs)
	assert.Empty(t, res.Attributions)
	assert.Len(t, res.Maintenances, 1)
	assert.Empty(t, res.Incidents)

	assert.Equal(t, 1, f.maintenances.appels)
	assert.Empty(t, f.materiels.termes, "les autres familles ne sont pas interrogées")
	assert.Zero(t, f.utilisateurs.appels)
	assert.Zero(t, f.attributions.appels)
	assert.Zero(t, f.incidents.appels)
}

func TestRechercher_FamilleInconnue(t *testing.T) {
	f := newRechercheFixture()

	_, err := f.service.Rechercher(testCtx(), "latitude", "serveurs")
	require.Error(t, err)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestRechercher_TermeVide(t *testing.T) {
	f := newRechercheFixture()

	_, err := f.service.Rechercher(testCtx(), "   ", "")
	require.Error(t, err)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
