package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	"parc-system/pkg/contextkeys"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/types"
)

const testOwnerID = "owner-test"

func testCtx() context.Context {
	return context.WithValue(context.Background(), contextkeys.OwnerIDKey, testOwnerID)
}

// ----- doubles -----

type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

type fakeMaterielRepo struct {
	materiels map[string]*entities.Materiel
	statuts   []string
}

func newFakeMaterielRepo(materiels ...*entities.Materiel) *fakeMaterielRepo {
	r := &fakeMaterielRepo{materiels: map[string]*entities.Materiel{}}
	for _, m := range materiels {
		r.materiels[m.ID] = m
	}
	return r
}

func (r *fakeMaterielRepo) ListMateriels(ctx context.Context, ownerID string, filter types.Filter) ([]entities.Materiel, uint64, error) {
	return nil, 0, nil
}

func (r *fakeMaterielRepo) ListAllMateriels(ctx context.Context, ownerID string) ([]entities.Materiel, error) {
	out := []entities.Materiel{}
	for _, m := range r.materiels {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMaterielRepo) FindMateriel(ctx context.Context, ownerID string, id string) (*entities.Materiel, error) {
	m, ok := r.materiels[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return m, nil
}

func (r *fakeMaterielRepo) FindMaterielTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Materiel, error) {
	return r.FindMateriel(ctx, ownerID, id)
}

func (r *fakeMaterielRepo) CreateMateriel(ctx context.Context, materiel *entities.Materiel) error {
	r.materiels[materiel.ID] = materiel
	return nil
}

func (r *fakeMaterielRepo) CreateMaterielTx(ctx context.Context, tx pgx.Tx, materiel *entities.Materiel) error {
	return r.CreateMateriel(ctx, materiel)
}

func (r *fakeMaterielRepo) UpdateMaterielTx(ctx context.Context, tx pgx.Tx, materiel *entities.Materiel) error {
	r.materiels[materiel.ID] = materiel
	return nil
}

func (r *fakeMaterielRepo) UpdateStatutTx(ctx context.Context, tx pgx.Tx, ownerID string, id string, statut string) error {
	m, ok := r.materiels[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.Statut = statut
	r.statuts = append(r.statuts, statut)
	return nil
}

func (r *fakeMaterielRepo) DeleteMaterielTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error {
	if _, ok := r.materiels[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.materiels, id)
	return nil
}

type fakeAttributionRepo struct {
	attributions map[string]*entities.Attribution
}

func newFakeAttributionRepo(attributions ...*entities.Attribution) *fakeAttributionRepo {
	r := &fakeAttributionRepo{attributions: map[string]*entities.Attribution{}}
	for _, a := range attributions {
		r.attributions[a.ID] = a
	}
	return r
}

func (r *fakeAttributionRepo) ListAttributions(ctx context.Context, ownerID string, filter types.Filter) ([]dto.AttributionDTO, uint64, error) {
	return nil, 0, nil
}

func (r *fakeAttributionRepo) ListAllAttributions(ctx context.Context, ownerID string) ([]entities.Attribution, error) {
	return nil, nil
}

func (r *fakeAttributionRepo) FindAttribution(ctx context.Context, ownerID string, id string) (*dto.AttributionDTO, error) {
	a, ok := r.attributions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &dto.AttributionDTO{ID: a.ID, Statut: a.Statut}, nil
}

func (r *fakeAttributionRepo) FindAttributionTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Attribution, error) {
	a, ok := r.attributions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copie := *a
	return &copie, nil
}

func (r *fakeAttributionRepo) CreateAttributionTx(ctx context.Context, tx pgx.Tx, attribution *entities.Attribution) error {
	r.attributions[attribution.ID] = attribution
	return nil
}

func (r *fakeAttributionRepo) UpdateAttributionTx(ctx context.Context, tx pgx.Tx, attribution *entities.Attribution) error {
	r.attributions[attribution.ID] = attribution
	return nil
}

func (r *fakeAttributionRepo) DeleteAttributionTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error {
	if _, ok := r.attributions[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.attributions, id)
	return nil
}

type fakeMaintenanceRepo struct {
	maintenances map[string]*entities.Maintenance
}

func newFakeMaintenanceRepo(maintenances ...*entities.Maintenance) *fakeMaintenanceRepo {
	r := &fakeMaintenanceRepo{maintenances: map[string]*entities.Maintenance{}}
	for _, m := range maintenances {
		r.maintenances[m.ID] = m
	}
	return r
}

func (r *fakeMaintenanceRepo) ListMaintenances(ctx context.Context, ownerID string, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error) {
	return nil, 0, nil
}

func (r *fakeMaintenanceRepo) ListAllMaintenances(ctx context.Context, ownerID string) ([]entities.Maintenance, error) {
	return nil, nil
}

func (r *fakeMaintenanceRepo) FindMaintenance(ctx context.Context, ownerID string, id string) (*dto.MaintenanceDTO, error) {
	m, ok := r.maintenances[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &dto.MaintenanceDTO{ID: m.ID, Statut: m.Statut}, nil
}

func (r *fakeMaintenanceRepo) FindMaintenanceTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Maintenance, error) {
	m, ok := r.maintenances[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copie := *m
	return &copie, nil
}

func (r *fakeMaintenanceRepo) CreateMaintenanceTx(ctx context.Context, tx pgx.Tx, maintenance *entities.Maintenance) error {
	r.maintenances[maintenance.ID] = maintenance
	return nil
}

func (r *fakeMaintenanceRepo) UpdateMaintenanceTx(ctx context.Context, tx pgx.Tx, maintenance *entities.Maintenance) error {
	r.maintenances[maintenance.ID] = maintenance
	return nil
}

func (r *fakeMaintenanceRepo) DeleteMaintenanceTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error {
	if _, ok := r.maintenances[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.maintenances, id)
	return nil
}

type fakeActiviteService struct {
	entries []entities.HistoriqueActivite
}

func (s *fakeActiviteService) Record(ctx context.Context, a *entities.HistoriqueActivite) {
	s.entries = append(s.entries, *a)
}

func (s *fakeActiviteService) ListActivites(ctx context.Context, limit int) ([]dto.ActiviteDTO, error) {
	return nil, nil
}

func (s *fakeActiviteService) PurgeActivites(ctx context.Context) error { return nil }

func (s *fakeActiviteService) hasType(typeActivite string) bool {
	for _, e := range s.entries {
		if e.TypeActivite == typeActivite {
			return true
		}
	}
	return false
}

type fakeCache struct {
	values     map[string]string
	delCount   int
	incrValues map[string]int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, incrValues: map[string]int64{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", repositories.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s, ok := value.(string); ok {
		c.values[key] = s
	} else if b, ok := value.([]byte); ok {
		c.values[key] = string(b)
	}
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	c.delCount++
	return nil
}

func (c *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	c.incrValues[key]++
	return c.incrValues[key], nil
}

func (c *fakeCache) Expire(ctx context.Context, key string, expiration time.Duration) (bool, error) {
	return true, nil
}

// ----- montage -----

type parcFixture struct {
	service      ParcServiceInterface
	materiels    *fakeMaterielRepo
	attributions *fakeAttributionRepo
	maintenances *fakeMaintenanceRepo
	activites    *fakeActiviteService
	cache        *fakeCache
}

func newParcFixture(materiels *fakeMaterielRepo, attributions *fakeAttributionRepo, maintenances *fakeMaintenanceRepo) *parcFixture {
	activites := &fakeActiviteService{}
	cache := newFakeCache()
	return &parcFixture{
		service:      NewParcService(fakeTxManager{}, materiels, attributions, maintenances, activites, cache, zap.NewNop()),
		materiels:    materiels,
		attributions: attributions,
		maintenances: maintenances,
		activites:    activites,
		cache:        cache,
	}
}

func materielDisponible(id string) *entities.Materiel {
	return &entities.Materiel{
		ID:          id,
		Nom:         "Dell Latitude 5540",
		Modele:      "Latitude 5540",
		NumeroSerie: "SN-" + id,
		DateAchat:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Statut:      entities.MaterielDisponible,
		OwnerID:     testOwnerID,
	}
}

// ----- attributions -----

func TestCreateAttribution_RefuseMaterielNonDisponible(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielAttribue
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	_, err := f.service.CreateAttribution(testCtx(), dto.CreateAttributionDTO{
		MaterielID:      "mat-1",
		UtilisateurID:   "uti-1",
		DateAttribution: "2025-03-01",
	})

	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, f.attributions.attributions, "aucune attribution ne doit être créée")
	assert.Equal(t, entities.MaterielAttribue, materiel.Statut)
}

func TestCreateAttribution_PasseLeMaterielAttribue(t *testing.T) {
	materiel := materielDisponible("mat-1")
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	res, err := f.service.CreateAttribution(testCtx(), dto.CreateAttributionDTO{
		MaterielID:      "mat-1",
		UtilisateurID:   "uti-1",
		DateAttribution: "2025-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.AttributionActive, res.Statut)
	assert.Equal(t, entities.MaterielAttribue, materiel.Statut)
	assert.True(t, f.activites.hasType(entities.ActiviteAttribution))
	assert.Equal(t, 1, f.cache.delCount, "le cache des statistiques doit être invalidé")
}

func TestUpdateAttribution_RetourLibereLeMateriel(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielAttribue
	attribution := &entities.Attribution{
		ID:              "att-1",
		MaterielID:      "mat-1",
		UtilisateurID:   "uti-1",
		DateAttribution: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Statut:          entities.AttributionActive,
		OwnerID:         testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(attribution), newFakeMaintenanceRepo())

	statut := entities.AttributionRetournee
	_, err := f.service.UpdateAttribution(testCtx(), "att-1", dto.UpdateAttributionDTO{Statut: &statut})

	require.NoError(t, err)
	assert.Equal(t, entities.MaterielDisponible, materiel.Statut)
	assert.True(t, f.attributions.attributions["att-1"].DateRetour.Valid, "la date de retour doit être renseignée")
	assert.True(t, f.activites.hasType(entities.ActiviteRetour))
}

func TestUpdateAttribution_EnAttenteSansCascade(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielAttribue
	attribution := &entities.Attribution{
		ID:            "att-1",
		MaterielID:    "mat-1",
		UtilisateurID: "uti-1",
		Statut:        entities.AttributionActive,
		OwnerID:       testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(attribution), newFakeMaintenanceRepo())

	statut := entities.AttributionEnAttente
	_, err := f.service.UpdateAttribution(testCtx(), "att-1", dto.UpdateAttributionDTO{Statut: &statut})

	require.NoError(t, err)
	assert.Equal(t, entities.MaterielAttribue, materiel.Statut, "Actif vers En attente ne touche pas au matériel")
	assert.Empty(t, f.materiels.statuts)
	assert.False(t, f.activites.hasType(entities.ActiviteRetour))
}

func TestDeleteAttribution_ActiveLibereLeMateriel(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielAttribue
	attribution := &entities.Attribution{
		ID:         "att-1",
		MaterielID: "mat-1",
		Statut:     entities.AttributionActive,
		OwnerID:    testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(attribution), newFakeMaintenanceRepo())

	require.NoError(t, f.service.DeleteAttribution(testCtx(), "att-1"))
	assert.Equal(t, entities.MaterielDisponible, materiel.Statut)
	assert.Empty(t, f.attributions.attributions)
}

func TestDeleteAttribution_RetourneeNeRejouePasLaLiberation(t *testing.T) {
	// Le matériel a depuis été remis en maintenance: la suppression d'une
	// attribution déjà retournée ne doit pas le libérer.
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielEnMaintenance
	attribution := &entities.Attribution{
		ID:         "att-1",
		MaterielID: "mat-1",
		Statut:     entities.AttributionRetournee,
		DateRetour: null.TimeFrom(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)),
		OwnerID:    testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(attribution), newFakeMaintenanceRepo())

	require.NoError(t, f.service.DeleteAttribution(testCtx(), "att-1"))
	assert.Equal(t, entities.MaterielEnMaintenance, materiel.Statut)
	assert.Empty(t, f.materiels.statuts)
}

// ----- maintenance -----

func TestCreateMaintenance_PasseLeMaterielEnMaintenance(t *testing.T) {
	materiel := materielDisponible("mat-1")
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	res, err := f.service.CreateMaintenance(testCtx(), dto.CreateMaintenanceDTO{
		MaterielID:      "mat-1",
		TypeMaintenance: "Réparation",
		Probleme:        "Écran fissuré",
		Technicien:      "A. Martin",
		DateDebut:       "2025-05-10",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.MaintenancePlanifiee, res.Statut, "statut par défaut")
	assert.Equal(t, entities.MaterielEnMaintenance, materiel.Statut)
}

func TestCreateMaintenance_TermineeSansCascade(t *testing.T) {
	materiel := materielDisponible("mat-1")
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	_, err := f.service.CreateMaintenance(testCtx(), dto.CreateMaintenanceDTO{
		MaterielID:      "mat-1",
		TypeMaintenance: "Réparation",
		Probleme:        "Intervention déjà close",
		Technicien:      "A. Martin",
		DateDebut:       "2025-02-01",
		Statut:          entities.MaintenanceTerminee,
	})

	require.NoError(t, err)
	assert.Equal(t, entities.MaterielDisponible, materiel.Statut)
	assert.Empty(t, f.materiels.statuts)
}

func TestUpdateMaintenance_TermineeLibereLeMateriel(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielEnMaintenance
	maintenance := &entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		Probleme:   "Disque défaillant",
		DateDebut:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Statut:     entities.MaintenanceEnCours,
		OwnerID:    testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo(maintenance))

	statut := entities.MaintenanceTerminee
	_, err := f.service.UpdateMaintenance(testCtx(), "mnt-1", dto.UpdateMaintenanceDTO{Statut: &statut})

	require.NoError(t, err)
	assert.Equal(t, entities.MaterielDisponible, materiel.Statut)
	assert.True(t, f.maintenances.maintenances["mnt-1"].DateFin.Valid, "la date de fin doit être renseignée")
	assert.True(t, f.activites.hasType(entities.ActiviteMaintenanceFin))
}

func TestUpdateMaintenance_Idempotente(t *testing.T) {
	materiel := materielDisponible("mat-1")
	maintenance := &entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		DateDebut:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		DateFin:    null.TimeFrom(time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)),
		Statut:     entities.MaintenanceTerminee,
		OwnerID:    testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo(maintenance))

	statut := entities.MaintenanceTerminee
	_, err := f.service.UpdateMaintenance(testCtx(), "mnt-1", dto.UpdateMaintenanceDTO{Statut: &statut})

	require.NoError(t, err)
	assert.Equal(t, entities.MaterielDisponible, materiel.Statut)
	assert.False(t, f.activites.hasType(entities.ActiviteMaintenanceFin), "pas d'activité de fin rejouée")
}

func TestUpdateMaintenance_ReouvertureRemetEnMaintenance(t *testing.T) {
	materiel := materielDisponible("mat-1")
	maintenance := &entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		DateDebut:  time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Statut:     entities.MaintenanceAnnulee,
		OwnerID:    testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo(maintenance))

	statut := entities.MaintenanceEnCours
	_, err := f.service.UpdateMaintenance(testCtx(), "mnt-1", dto.UpdateMaintenanceDTO{Statut: &statut})

	require.NoError(t, err)
	assert.Equal(t, entities.MaterielEnMaintenance, materiel.Statut)
}

func TestDeleteMaintenance_TicketOuvertLibereLeMateriel(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielEnMaintenance
	maintenance := &entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		Statut:     entities.MaintenancePlanifiee,
		OwnerID:    testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo(maintenance))

	require.NoError(t, f.service.DeleteMaintenance(testCtx(), "mnt-1"))
	assert.Equal(t, entities.MaterielDisponible, materiel.Statut)
}

func TestDeleteMaintenance_TicketCloturesSansCascade(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielAttribue
	maintenance := &entities.Maintenance{
		ID:         "mnt-1",
		MaterielID: "mat-1",
		Statut:     entities.MaintenanceTerminee,
		OwnerID:    testOwnerID,
	}
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo(maintenance))

	require.NoError(t, f.service.DeleteMaintenance(testCtx(), "mnt-1"))
	assert.Equal(t, entities.MaterielAttribue, materiel.Statut)
	assert.Empty(t, f.materiels.statuts)
}

// ----- matériel -----

func TestUpdateMateriel_PassageEnMaintenanceOuvreUnTicket(t *testing.T) {
	materiel := materielDisponible("mat-1")
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	statut := entities.MaterielEnMaintenance
	_, err := f.service.UpdateMateriel(testCtx(), "mat-1", dto.UpdateMaterielDTO{Statut: &statut})

	require.NoError(t, err)
	require.Len(t, f.maintenances.maintenances, 1)
	for _, ticket := range f.maintenances.maintenances {
		assert.Equal(t, autoMaintenanceType, ticket.TypeMaintenance)
		assert.Equal(t, autoMaintenanceTechnicien, ticket.Technicien)
		assert.Equal(t, autoMaintenanceProbleme, ticket.Probleme)
		assert.Equal(t, entities.MaintenanceEnCours, ticket.Statut)
		assert.Equal(t, autoMaintenanceNotes, ticket.Notes.String)
	}
	assert.True(t, f.activites.hasType(entities.ActiviteMaintenanceDeb))
}

func TestUpdateMateriel_DejaEnMaintenanceSansNouveauTicket(t *testing.T) {
	materiel := materielDisponible("mat-1")
	materiel.Statut = entities.MaterielEnMaintenance
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	nom := "Dell Latitude 5540 (reconditionné)"
	_, err := f.service.UpdateMateriel(testCtx(), "mat-1", dto.UpdateMaterielDTO{Nom: &nom})

	require.NoError(t, err)
	assert.Empty(t, f.maintenances.maintenances)
	assert.True(t, f.activites.hasType(entities.ActiviteModification))
}

func TestDeleteMateriel_ActiviteSansReferenceMateriel(t *testing.T) {
	materiel := materielDisponible("mat-1")
	f := newParcFixture(newFakeMaterielRepo(materiel), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	require.NoError(t, f.service.DeleteMateriel(testCtx(), "mat-1"))
	assert.Empty(t, f.materiels.materiels)

	require.Len(t, f.activites.entries, 1)
	entry := f.activites.entries[0]
	assert.Equal(t, entities.ActiviteSuppression, entry.TypeActivite)
	assert.False(t, entry.MaterielID.Valid, "la ligne supprimée ne doit plus être référencée")
	assert.Contains(t, string(entry.Details), "SN-mat-1")
}

func TestCreateMateriel_StatutParDefaut(t *testing.T) {
	f := newParcFixture(newFakeMaterielRepo(), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	res, err := f.service.CreateMateriel(testCtx(), dto.CreateMaterielDTO{
		Nom:         "HP EliteBook 840",
		Modele:      "EliteBook 840 G9",
		NumeroSerie: "SN-840-01",
		DateAchat:   "2024-06-01",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.MaterielDisponible, res.Statut)
	assert.True(t, f.activites.hasType(entities.ActiviteAcquisition))
}

func TestCascadeStatutMaintenance_Totale(t *testing.T) {
	cases := map[string]string{
		entities.MaintenancePlanifiee: entities.MaterielEnMaintenance,
		entities.MaintenanceEnCours:   entities.MaterielEnMaintenance,
		entities.MaintenanceTerminee:  entities.MaterielDisponible,
		entities.MaintenanceAnnulee:   entities.MaterielDisponible,
	}
	for statut, attendu := range cases {
		assert.Equal(t, attendu, cascadeStatutMaintenance(statut), statut)
	}
}

func TestSansOwnerID_Refuse(t *testing.T) {
	f := newParcFixture(newFakeMaterielRepo(), newFakeAttributionRepo(), newFakeMaintenanceRepo())

	_, err := f.service.CreateMateriel(context.Background(), dto.CreateMaterielDTO{
		Nom:         "HP EliteBook 840",
		Modele:      "EliteBook 840 G9",
		NumeroSerie: "SN-840-01",
		DateAchat:   "2024-06-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrOwnerIDNotFoundInContext)
}
