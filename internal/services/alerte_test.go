package services

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
)

var maintenant = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func typesAlertes(alertes []dto.AlerteDTO) []string {
	out := make([]string, 0, len(alertes))
	for _, a := range alertes {
		out = append(out, a.Type)
	}
	return out
}

func TestCalculerAlertes_GarantieExpiree(t *testing.T) {
	m := *materielDisponible("mat-1")
	m.GarantieFin = null.TimeFrom(maintenant.AddDate(0, 0, -1))

	alertes := CalculerAlertes(maintenant, []entities.Materiel{m}, nil, nil)

	require.Len(t, alertes, 1)
	assert.Equal(t, dto.AlerteGarantieExpiree, alertes[0].Type)
	assert.Equal(t, dto.SeveriteAlerte, alertes[0].Severite)
	require.NotNil(t, alertes[0].Materiel)
	assert.Equal(t, "mat-1", alertes[0].Materiel.ID)
}

func TestCalculerAlertes_GarantieEncoreValide(t *testing.T) {
	m := *materielDisponible("mat-1")
	m.GarantieFin = null.TimeFrom(maintenant.AddDate(0, 0, 1))

	alertes := CalculerAlertes(maintenant, []entities.Materiel{m}, nil, nil)
	assert.Empty(t, alertes)
}

func TestCalculerAlertes_MaterielHorsServiceCritique(t *testing.T) {
	m := *materielDisponible("mat-1")
	m.Statut = entities.MaterielHorsService

	alertes := CalculerAlertes(maintenant, []entities.Materiel{m}, nil, nil)

	require.Len(t, alertes, 1)
	assert.Equal(t, dto.AlerteMaterielHorsService, alertes[0].Type)
	assert.Equal(t, dto.SeveriteCritique, alertes[0].Severite)
}

func TestCalculerAlertes_MaterielEnMaintenanceInfo(t *testing.T) {
	m := *materielDisponible("mat-1")
	m.Statut = entities.MaterielEnMaintenance

	alertes := CalculerAlertes(maintenant, []entities.Materiel{m}, nil, nil)

	require.Len(t, alertes, 1)
	assert.Equal(t, dto.SeveriteInfo, alertes[0].Severite)
}

func TestCalculerAlertes_MaintenanceEnRetard(t *testing.T) {
	mt := entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		Probleme:   "Remplacement batterie",
		DateDebut:  maintenant.AddDate(0, 0, -10),
		DateFin:    null.TimeFrom(maintenant.AddDate(0, 0, -2)),
		Statut:     entities.MaintenanceEnCours,
	}

	alertes := CalculerAlertes(maintenant, nil, []entities.Maintenance{mt}, nil)

	require.Len(t, alertes, 1)
	assert.Equal(t, dto.AlerteMaintenanceRetard, alertes[0].Type)
	assert.Equal(t, dto.SeveriteCritique, alertes[0].Severite)
}

func TestCalculerAlertes_MaintenanceTermineeIgnoree(t *testing.T) {
	mt := entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		DateDebut:  maintenant.AddDate(0, 0, -10),
		DateFin:    null.TimeFrom(maintenant.AddDate(0, 0, -2)),
		Statut:     entities.MaintenanceTerminee,
	}

	alertes := CalculerAlertes(maintenant, nil, []entities.Maintenance{mt}, nil)
	assert.Empty(t, alertes)
}

func TestCalculerAlertes_MaintenancePrevueFenetreDeSeptJours(t *testing.T) {
	dans := func(jours int) entities.Maintenance {
		return entities.Maintenance{
			ID:         "mnt",
			MaterielID: "mat-1",
			Probleme:   "Entretien annuel",
			DateDebut:  maintenant.AddDate(0, 0, jours),
			Statut:     entities.MaintenancePlanifiee,
		}
	}

	// Dans la fenêtre.
	alertes := CalculerAlertes(maintenant, nil, []entities.Maintenance{dans(3)}, nil)
	assert.Contains(t, typesAlertes(alertes), dto.AlerteMaintenancePrevue)

	// Exactement sur l'horizon: la borne est incluse.
	alertes = CalculerAlertes(maintenant, nil, []entities.Maintenance{dans(7)}, nil)
	assert.Contains(t, typesAlertes(alertes), dto.AlerteMaintenancePrevue)

	// Au-delà de l'horizon.
	alertes = CalculerAlertes(maintenant, nil, []entities.Maintenance{dans(8)}, nil)
	assert.NotContains(t, typesAlertes(alertes), dto.AlerteMaintenancePrevue)

	// Déjà commencée: pas une annonce, la détection de retard prend le relais.
	alertes = CalculerAlertes(maintenant, nil, []entities.Maintenance{dans(-1)}, nil)
	assert.NotContains(t, typesAlertes(alertes), dto.AlerteMaintenancePrevue)
}

func TestCalculerAlertes_PreferencesCoupentLesFamilles(t *testing.T) {
	m := *materielDisponible("mat-1")
	m.GarantieFin = null.TimeFrom(maintenant.AddDate(0, 0, -1))
	mt := entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		DateDebut:  maintenant.AddDate(0, 0, 2),
		Statut:     entities.MaintenancePlanifiee,
	}

	pref := entities.DefaultPreference(testOwnerID)
	pref.AlertesGarantie = false
	pref.AlertesMaintenance = false

	alertes := CalculerAlertes(maintenant, []entities.Materiel{m}, []entities.Maintenance{mt}, pref)
	assert.Empty(t, alertes, "les familles désactivées ne produisent rien")
}

func TestCalculerAlertes_EtatDuMaterielNonDesactivable(t *testing.T) {
	m := *materielDisponible("mat-1")
	m.Statut = entities.MaterielHorsService

	pref := entities.DefaultPreference(testOwnerID)
	pref.AlertesGarantie = false
	pref.AlertesMaintenance = false

	alertes := CalculerAlertes(maintenant, []entities.Materiel{m}, nil, pref)
	require.Len(t, alertes, 1)
	assert.Equal(t, dto.AlerteMaterielHorsService, alertes[0].Type)
}
