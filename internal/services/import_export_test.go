package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/types"
)

type fakeUtilisateurRepo struct {
	utilisateurs map[string]*entities.Utilisateur
}

func newFakeUtilisateurRepo() *fakeUtilisateurRepo {
	return &fakeUtilisateurRepo{utilisateurs: map[string]*entities.Utilisateur{}}
}

func (r *fakeUtilisateurRepo) ListUtilisateurs(ctx context.Context, ownerID string, filter types.Filter) ([]entities.Utilisateur, uint64, error) {
	return nil, 0, nil
}

func (r *fakeUtilisateurRepo) ListAllUtilisateurs(ctx context.Context, ownerID string) ([]entities.Utilisateur, error) {
	out := []entities.Utilisateur{}
	for _, u := range r.utilisateurs {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUtilisateurRepo) FindUtilisateur(ctx context.Context, ownerID string, id string) (*entities.Utilisateur, error) {
	u, ok := r.utilisateurs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUtilisateurRepo) CreateUtilisateur(ctx context.Context, utilisateur *entities.Utilisateur) error {
	r.utilisateurs[utilisateur.ID] = utilisateur
	return nil
}

func (r *fakeUtilisateurRepo) CreateUtilisateurTx(ctx context.Context, tx pgx.Tx, utilisateur *entities.Utilisateur) error {
	return r.CreateUtilisateur(ctx, utilisateur)
}

func (r *fakeUtilisateurRepo) UpdateUtilisateur(ctx context.Context, utilisateur *entities.Utilisateur) error {
	r.utilisateurs[utilisateur.ID] = utilisateur
	return nil
}

func (r *fakeUtilisateurRepo) DeleteUtilisateur(ctx context.Context, ownerID string, id string) error {
	delete(r.utilisateurs, id)
	return nil
}

// conflictMaterielRepo refuse un numéro de série donné, comme le ferait la
// contrainte d'unicité.
type conflictMaterielRepo struct {
	*fakeMaterielRepo
	serieEnConflit string
}

func (r *conflictMaterielRepo) CreateMateriel(ctx context.Context, materiel *entities.Materiel) error {
	if materiel.NumeroSerie == r.serieEnConflit {
		return apperrors.ErrConflict
	}
	return r.fakeMaterielRepo.CreateMateriel(ctx, materiel)
}

func newImportExportFixture(materiels repositories.MaterielRepositoryInterface, utilisateurs *fakeUtilisateurRepo) (ImportExportServiceInterface, *fakeActiviteService) {
	activites := &fakeActiviteService{}
	svc := NewImportExportService(materiels, utilisateurs, newFakeAttributionRepo(), newFakeMaintenanceRepo(), nil, activites, zap.NewNop())
	return svc, activites
}

func TestImportMaterielsCSV_LignesValidesEtRejets(t *testing.T) {
	materiels := newFakeMaterielRepo()
	svc, activites := newImportExportFixture(materiels, newFakeUtilisateurRepo())

	contenu := strings.Join([]string{
		"nom,modele,numero_serie,fournisseur,date_achat,prix_achat,garantie_fin,description,statut",
		`Dell Latitude,Latitude 5540,SN-001,Dell,2024-01-15,899.99,2027-01-15,Portable standard,Disponible`,
		`,Latitude 5540,SN-002,,2024-01-15,,,,`,
		`ThinkPad T14,T14 Gen4,SN-003,Lenovo,pas-une-date,,,,`,
		`EliteBook,840 G9,SN-004,HP,15/02/2024,"1099,50",,Format français,Statut inconnu`,
	}, "\n")

	rapport, err := svc.ImportMaterielsCSV(testCtx(), strings.NewReader(contenu))

	require.NoError(t, err)
	assert.Equal(t, 2, rapport.Importees)
	require.Len(t, rapport.Rejetees, 2)
	assert.Equal(t, 3, rapport.Rejetees[0].Ligne)
	assert.Equal(t, 4, rapport.Rejetees[1].Ligne)

	// Le statut inconnu retombe sur Disponible, le prix français est compris.
	for _, m := range materiels.materiels {
		if m.NumeroSerie == "SN-004" {
			assert.Equal(t, entities.MaterielDisponible, m.Statut)
			assert.InDelta(t, 1099.50, m.PrixAchat.Float64, 0.001)
			assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), m.DateAchat)
		}
	}

	assert.True(t, activites.hasType(entities.ActiviteAcquisition), "l'import réussi doit être journalisé")
}

func TestImportMaterielsCSV_EnTeteIncomplet(t *testing.T) {
	svc, _ := newImportExportFixture(newFakeMaterielRepo(), newFakeUtilisateurRepo())

	_, err := svc.ImportMaterielsCSV(testCtx(), strings.NewReader("nom,modele\nDell,Latitude"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numero_serie")
}

func TestImportMaterielsCSV_SerieDupliqueeRejetee(t *testing.T) {
	materiels := &conflictMaterielRepo{fakeMaterielRepo: newFakeMaterielRepo(), serieEnConflit: "SN-DUP"}
	svc, _ := newImportExportFixture(materiels, newFakeUtilisateurRepo())

	contenu := strings.Join([]string{
		"nom,modele,numero_serie,date_achat",
		"Dell,Latitude,SN-OK,2024-01-15",
		"Dell,Latitude,SN-DUP,2024-01-15",
	}, "\n")

	rapport, err := svc.ImportMaterielsCSV(testCtx(), strings.NewReader(contenu))

	require.NoError(t, err)
	assert.Equal(t, 1, rapport.Importees)
	require.Len(t, rapport.Rejetees, 1)
	assert.Contains(t, rapport.Rejetees[0].Raison, "numéro de série")
}

func TestImportUtilisateursCSV_NormaliseLeStatut(t *testing.T) {
	utilisateurs := newFakeUtilisateurRepo()
	svc, _ := newImportExportFixture(newFakeMaterielRepo(), utilisateurs)

	contenu := strings.Join([]string{
		"prenom,nom,email,service,poste,statut",
		"Marie,Dupont,marie.dupont@exemple.fr,Comptabilité,Comptable,active",
		"Jean,Martin,jean.martin@exemple.fr,IT,Technicien,en congé",
		"Luc,Bernard,luc.bernard@exemple.fr,RH,Chargé RH,",
	}, "\n")

	rapport, err := svc.ImportUtilisateursCSV(testCtx(), strings.NewReader(contenu))

	require.NoError(t, err)
	assert.Equal(t, 3, rapport.Importees)

	statuts := map[string]string{}
	for _, u := range utilisateurs.utilisateurs {
		statuts[u.Email] = u.Statut
	}
	assert.Equal(t, entities.UtilisateurActif, statuts["marie.dupont@exemple.fr"])
	assert.Equal(t, entities.UtilisateurSuspendu, statuts["jean.martin@exemple.fr"])
	assert.Equal(t, entities.UtilisateurActif, statuts["luc.bernard@exemple.fr"], "statut vide retombe sur Actif")
}

func TestExportCSV_Materiels(t *testing.T) {
	materiels := newFakeMaterielRepo(&entities.Materiel{
		ID:          "mat-1",
		Nom:         "Dell Latitude",
		Modele:      "Latitude 5540",
		NumeroSerie: "SN-001",
		Fournisseur: null.StringFrom("Dell"),
		DateAchat:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		PrixAchat:   null.Float64From(899.99),
		GarantieFin: null.TimeFrom(time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)),
		Statut:      entities.MaterielDisponible,
		OwnerID:     testOwnerID,
	})
	svc, _ := newImportExportFixture(materiels, newFakeUtilisateurRepo())

	var buf bytes.Buffer
	filename, err := svc.ExportCSV(testCtx(), "materiels", &buf)

	require.NoError(t, err)
	assert.Equal(t, ExportFilename("materiels"), filename)
	assert.True(t, strings.HasPrefix(filename, "materiels_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lignes := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lignes, 2)
	assert.Equal(t, "nom,modele,numero_serie,fournisseur,date_achat,prix_achat,garantie_fin,description,statut", lignes[0])
	assert.Contains(t, lignes[1], "15/01/2024", "les dates exportées sont au format français")
	assert.Contains(t, lignes[1], "899.99")
	assert.Contains(t, lignes[1], "15/01/2027")
}

func TestExportCSV_TableInconnue(t *testing.T) {
	svc, _ := newImportExportFixture(newFakeMaterielRepo(), newFakeUtilisateurRepo())

	var buf bytes.Buffer
	_, err := svc.ExportCSV(testCtx(), "comptes", &buf)
	require.Error(t, err)

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestExportPuisImport_ConserveLesChamps(t *testing.T) {
	origine := &entities.Materiel{
		ID:          "mat-1",
		Nom:         "Écran Samsung",
		Modele:      "Odyssey G5 27\"",
		NumeroSerie: "SN-ÉCR-001",
		Fournisseur: null.StringFrom("Boulanger Pro"),
		DateAchat:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		PrixAchat:   null.Float64From(1234.50),
		GarantieFin: null.TimeFrom(time.Date(2027, 3, 5, 0, 0, 0, 0, time.UTC)),
		Description: null.StringFrom("Moniteur incurvé, salle de réunion"),
		Statut:      entities.MaterielHorsService,
		OwnerID:     testOwnerID,
	}
	svc, _ := newImportExportFixture(newFakeMaterielRepo(origine), newFakeUtilisateurRepo())

	var buf bytes.Buffer
	_, err := svc.ExportCSV(testCtx(), "materiels", &buf)
	require.NoError(t, err)

	cible := newFakeMaterielRepo()
	svcCible, _ := newImportExportFixture(cible, newFakeUtilisateurRepo())

	rapport, err := svcCible.ImportMaterielsCSV(testCtx(), &buf)
	require.NoError(t, err)
	require.Equal(t, 1, rapport.Importees)
	require.Empty(t, rapport.Rejetees)

	for _, m := range cible.materiels {
		assert.Equal(t, origine.Nom, m.Nom)
		assert.Equal(t, origine.Modele, m.Modele)
		assert.Equal(t, origine.NumeroSerie, m.NumeroSerie)
		assert.Equal(t, origine.Fournisseur.String, m.Fournisseur.String)
		assert.Equal(t, origine.DateAchat, m.DateAchat)
		assert.InDelta(t, origine.PrixAchat.Float64, m.PrixAchat.Float64, 0.001)
		assert.Equal(t, origine.GarantieFin.Time, m.GarantieFin.Time)
		assert.Equal(t, origine.Description.String, m.Description.String)
		assert.Equal(t, origine.Statut, m.Statut)
	}
}

func TestTemplatesCSV_ReimportablesSansRejet(t *testing.T) {
	materiels := newFakeMaterielRepo()
	utilisateurs := newFakeUtilisateurRepo()
	svc, _ := newImportExportFixture(materiels, utilisateurs)

	nomMateriels, contenuMateriels := svc.TemplateMaterielsCSV()
	assert.Equal(t, "modele_materiel.csv", nomMateriels)
	rapport, err := svc.ImportMaterielsCSV(testCtx(), bytes.NewReader(contenuMateriels))
	require.NoError(t, err)
	assert.Equal(t, 2, rapport.Importees)
	assert.Empty(t, rapport.Rejetees, "le modèle doit s'importer tel quel")

	nomUtilisateurs, contenuUtilisateurs := svc.TemplateUtilisateursCSV()
	assert.Equal(t, "modele_utilisateurs.csv", nomUtilisateurs)
	rapport, err = svc.ImportUtilisateursCSV(testCtx(), bytes.NewReader(contenuUtilisateurs))
	require.NoError(t, err)
	assert.Equal(t, 2, rapport.Importees)
	assert.Empty(t, rapport.Rejetees)
}

func TestImportSansOwnerID_Refuse(t *testing.T) {
	svc, _ := newImportExportFixture(newFakeMaterielRepo(), newFakeUtilisateurRepo())

	_, err := svc.ImportMaterielsCSV(context.Background(), strings.NewReader("nom,modele,numero_serie,date_achat\n"))
	assert.ErrorIs(t, err, apperrors.ErrOwnerIDNotFoundInContext)
}
