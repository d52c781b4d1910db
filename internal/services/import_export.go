package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	"parc-system/internal/repositories"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/utils"
)

const exportDateLayout = "02/01/2006"

type ImportExportServiceInterface interface {
	ImportMaterielsCSV(ctx context.Context, reader io.Reader) (*dto.ImportRapportDTO, error)
	ImportUtilisateursCSV(ctx context.Context, reader io.Reader) (*dto.ImportRapportDTO, error)
	ExportCSV(ctx context.Context, table string, writer io.Writer) (string, error)
	TemplateMaterielsCSV() (string, []byte)
	TemplateUtilisateursCSV() (string, []byte)
}

type ImportExportService struct {
	materielRepo    repositories.MaterielRepositoryInterface
	utilisateurRepo repositories.UtilisateurRepositoryInterface
	attributionRepo repositories.AttributionRepositoryInterface
	maintenanceRepo repositories.MaintenanceRepositoryInterface
	incidentRepo    repositories.IncidentRepositoryInterface
	activiteService ActiviteServiceInterface
	logger          *zap.Logger
}

func NewImportExportService(
	materielRepo repositories.MaterielRepositoryInterface,
	utilisateurRepo repositories.UtilisateurRepositoryInterface,
	attributionRepo repositories.AttributionRepositoryInterface,
	maintenanceRepo repositories.MaintenanceRepositoryInterface,
	incidentRepo repositories.IncidentRepositoryInterface,
	activiteService ActiviteServiceInterface,
	logger *zap.Logger,
) ImportExportServiceInterface {
	return &ImportExportService{
		materielRepo:    materielRepo,
		utilisateurRepo: utilisateurRepo,
		attributionRepo: attributionRepo,
		maintenanceRepo: maintenanceRepo,
		incidentRepo:    incidentRepo,
		activiteService: activiteService,
		logger:          logger,
	}
}

// lireEntete associe chaque nom de colonne à son index, sans tenir compte
// de la casse ni des espaces.
func lireEntete(record []string) map[string]int {
	entete := make(map[string]int, len(record))
	for i, col := range record {
		entete[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return entete
}

func champ(record []string, entete map[string]int, nom string) string {
	idx, ok := entete[nom]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func champPtr(record []string, entete map[string]int, nom string) *string {
	v := champ(record, entete, nom)
	if v == "" {
		return nil
	}
	return &v
}

// parseDateImport accepte la date ISO et le format d'export français.
func parseDateImport(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(exportDateLayout, value)
}

func (s *ImportExportService) ImportMaterielsCSV(ctx context.Context, reader io.Reader) (*dto.ImportRapportDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	lecteur := csv.NewReader(reader)
	lecteur.FieldsPerRecord = -1

	premiere, err := lecteur.Read()
	if err != nil {
		return nil, apperrors.NewInvalidInputError("fichier CSV vide ou illisible")
	}
	entete := lireEntete(premiere)
	for _, obligatoire := range []string{"nom", "modele", "numero_serie", "date_achat"} {
		if _, ok := entete[obligatoire]; !ok {
			return nil, apperrors.NewInvalidInputError("colonne obligatoire absente de l'en-tête: %s", obligatoire)
		}
	}

	rapport := &dto.ImportRapportDTO{Rejetees: []dto.LigneRejeteeDTO{}}
	ligne := 1

	for {
		record, err := lecteur.Read()
		if err == io.EOF {
			break
		}
		ligne++
		if err != nil {
			rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "ligne CSV mal formée"})
			continue
		}

		nom := champ(record, entete, "nom")
		modele := champ(record, entete, "modele")
		numeroSerie := champ(record, entete, "numero_serie")
		if nom == "" || modele == "" || numeroSerie == "" {
			rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "nom, modele et numero_serie sont obligatoires"})
			continue
		}

		dateAchat, err := parseDateImport(champ(record, entete, "date_achat"))
		if err != nil {
			rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "date_achat invalide"})
			continue
		}

		var prixAchat null.Float64
		if v := champ(record, entete, "prix_achat"); v != "" {
			prix, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
			if err != nil {
				rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "prix_achat invalide"})
				continue
			}
			prixAchat = null.Float64From(prix)
		}

		var garantieFin null.Time
		if v := champ(record, entete, "garantie_fin"); v != "" {
			fin, err := parseDateImport(v)
			if err != nil {
				rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "garantie_fin invalide"})
				continue
			}
			garantieFin = null.TimeFrom(fin)
		}

		statut := champ(record, entete, "statut")
		if !entities.IsValidStatutMateriel(statut) {
			statut = entities.MaterielDisponible
		}

		materiel := &entities.Materiel{
			ID:          uuid.New().String(),
			Nom:         nom,
			Modele:      modele,
			NumeroSerie: numeroSerie,
			Fournisseur: null.StringFromPtr(champPtr(record, entete, "fournisseur")),
			DateAchat:   dateAchat,
			PrixAchat:   prixAchat,
			GarantieFin: garantieFin,
			Description: null.StringFromPtr(champPtr(record, entete, "description")),
			Statut:      statut,
			OwnerID:     ownerID,
		}

		if err := s.materielRepo.CreateMateriel(ctx, materiel); err != nil {
			raison := "échec d'insertion"
			if err == apperrors.ErrConflict {
				raison = "numéro de série déjà présent"
			}
			rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: raison})
			continue
		}
		rapport.Importees++
	}

	if rapport.Importees > 0 {
		s.activiteService.Record(ctx, &entities.HistoriqueActivite{
			TypeActivite: entities.ActiviteAcquisition,
			Titre:        fmt.Sprintf("Import CSV: %d matériels ajoutés", rapport.Importees),
			OwnerID:      ownerID,
		})
	}
	return rapport, nil
}

func (s *ImportExportService) ImportUtilisateursCSV(ctx context.Context, reader io.Reader) (*dto.ImportRapportDTO, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	lecteur := csv.NewReader(reader)
	lecteur.FieldsPerRecord = -1

	premiere, err := lecteur.Read()
	if err != nil {
		return nil, apperrors.NewInvalidInputError("fichier CSV vide ou illisible")
	}
	entete := lireEntete(premiere)
	for _, obligatoire := range []string{"prenom", "nom", "email"} {
		if _, ok := entete[obligatoire]; !ok {
			return nil, apperrors.NewInvalidInputError("colonne obligatoire absente de l'en-tête: %s", obligatoire)
		}
	}

	rapport := &dto.ImportRapportDTO{Rejetees: []dto.LigneRejeteeDTO{}}
	ligne := 1

	for {
		record, err := lecteur.Read()
		if err == io.EOF {
			break
		}
		ligne++
		if err != nil {
			rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "ligne CSV mal formée"})
			continue
		}

		prenom := champ(record, entete, "prenom")
		nom := champ(record, entete, "nom")
		email := champ(record, entete, "email")
		if prenom == "" || nom == "" || email == "" {
			rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "prenom, nom et email sont obligatoires"})
			continue
		}

		utilisateur := &entities.Utilisateur{
			ID:        uuid.New().String(),
			Prenom:    prenom,
			Nom:       nom,
			Email:     email,
			Telephone: null.StringFromPtr(champPtr(record, entete, "telephone")),
			Service:   champ(record, entete, "service"),
			Poste:     champ(record, entete, "poste"),
			Statut:    entities.NormalizeStatutUtilisateur(champ(record, entete, "statut")),
			OwnerID:   ownerID,
		}

		if err := s.utilisateurRepo.CreateUtilisateur(ctx, utilisateur); err != nil {
			rapport.Rejetees = append(rapport.Rejetees, dto.LigneRejeteeDTO{Ligne: ligne, Raison: "échec d'insertion"})
			continue
		}
		rapport.Importees++
	}
	return rapport, nil
}

// Modèles à remplir proposés au téléchargement, avec des lignes d'exemple.
const (
	templateMateriels = "nom,modele,numero_serie,fournisseur,date_achat,prix_achat,garantie_fin,description,statut\n" +
		"MacBook Pro,M2 2023,MBP2023001,Apple Store,2023-01-15,2499.99,2025-01-15,Ordinateur portable pour développement,Disponible\n" +
		"Dell XPS,13 Plus,DXPS2023001,Dell Direct,2023-02-20,1899.99,2025-02-20,Ordinateur portable bureautique,Disponible\n"

	templateUtilisateurs = "prenom,nom,email,telephone,service,poste,statut\n" +
		"Jean,Dupont,jean.dupont@entreprise.com,0123456789,IT,Administrateur système,Actif\n" +
		"Marie,Martin,marie.martin@entreprise.com,0987654321,Marketing,Chargée de communication,Actif\n"
)

func (s *ImportExportService) TemplateMaterielsCSV() (string, []byte) {
	return "modele_materiel.csv", []byte(templateMateriels)
}

func (s *ImportExportService) TemplateUtilisateursCSV() (string, []byte) {
	return "modele_utilisateurs.csv", []byte(templateUtilisateurs)
}

// ExportFilename nomme le fichier exporté: <table>_AAAA-MM-JJ.csv.
func ExportFilename(table string) string {
	return fmt.Sprintf("%s_%s.csv", table, time.Now().Format(dateLayout))
}

func exportDate(t time.Time) string {
	return t.Format(exportDateLayout)
}

func exportDateNull(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(exportDateLayout)
}

func exportString(s null.String) string {
	return s.String
}

func exportFloat(f null.Float64) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', 2, 64)
}

// ExportCSV écrit la table demandée au format CSV et retourne le nom de
// fichier à proposer au client.
func (s *ImportExportService) ExportCSV(ctx context.Context, table string, writer io.Writer) (string, error) {
	ownerID, err := utils.GetOwnerIDFromCtx(ctx)
	if err != nil {
		return "", err
	}

	ecrivain := csv.NewWriter(writer)
	defer ecrivain.Flush()

	switch table {
	case "materiels":
		materiels, err := s.materielRepo.ListAllMateriels(ctx, ownerID)
		if err != nil {
			return "", err
		}
		if err := ecrivain.Write([]string{"nom", "modele", "numero_serie", "fournisseur", "date_achat", "prix_achat", "garantie_fin", "description", "statut"}); err != nil {
			return "", err
		}
		for i := range materiels {
			m := &materiels[i]
			if err := ecrivain.Write([]string{
				m.Nom, m.Modele, m.NumeroSerie, exportString(m.Fournisseur),
				exportDate(m.DateAchat), exportFloat(m.PrixAchat), exportDateNull(m.GarantieFin),
				exportString(m.Description), m.Statut,
			}); err != nil {
				return "", err
			}
		}

	case "utilisateurs":
		utilisateurs, err := s.utilisateurRepo.ListAllUtilisateurs(ctx, ownerID)
		if err != nil {
			return "", err
		}
		if err := ecrivain.Write([]string{"prenom", "nom", "email", "telephone", "service", "poste", "statut"}); err != nil {
			return "", err
		}
		for i := range utilisateurs {
			u := &utilisateurs[i]
			if err := ecrivain.Write([]string{
				u.Prenom, u.Nom, u.Email, exportString(u.Telephone), u.Service, u.Poste, u.Statut,
			}); err != nil {
				return "", err
			}
		}

	case "attributions":
		attributions, err := s.attributionRepo.ListAllAttributions(ctx, ownerID)
		if err != nil {
			return "", err
		}
		if err := ecrivain.Write([]string{"materiel_id", "utilisateur_id", "date_attribution", "date_retour", "statut", "notes"}); err != nil {
			return "", err
		}
		for i := range attributions {
			a := &attributions[i]
			if err := ecrivain.Write([]string{
				a.MaterielID, a.UtilisateurID, exportDate(a.DateAttribution), exportDateNull(a.DateRetour), a.Statut, exportString(a.Notes),
			}); err != nil {
				return "", err
			}
		}

	case "maintenance":
		maintenances, err := s.maintenanceRepo.ListAllMaintenances(ctx, ownerID)
		if err != nil {
			return "", err
		}
		if err := ecrivain.Write([]string{"materiel_id", "type_maintenance", "probleme", "technicien", "date_debut", "date_fin", "statut", "cout", "notes"}); err != nil {
			return "", err
		}
		for i := range maintenances {
			m := &maintenances[i]
			if err := ecrivain.Write([]string{
				m.MaterielID, m.TypeMaintenance, m.Probleme, m.Technicien,
				exportDate(m.DateDebut), exportDateNull(m.DateFin), m.Statut, exportFloat(m.Cout), exportString(m.Notes),
			}); err != nil {
				return "", err
			}
		}

	case "incidents":
		incidents, err := s.incidentRepo.ListAllIncidents(ctx, ownerID)
		if err != nil {
			return "", err
		}
		if err := ecrivain.Write([]string{"titre", "description", "priorite", "statut", "materiel_id", "utilisateur_id", "date_creation", "date_resolution"}); err != nil {
			return "", err
		}
		for i := range incidents {
			inc := &incidents[i]
			if err := ecrivain.Write([]string{
				inc.Titre, inc.Description, inc.Priorite, inc.Statut,
				exportString(inc.MaterielID), exportString(inc.UtilisateurID),
				exportDate(inc.DateCreation), exportDateNull(inc.DateResolution),
			}); err != nil {
				return "", err
			}
		}

	default:
		return "", apperrors.NewInvalidInputError("table inconnue pour l'export: %q", table)
	}

	ecrivain.Flush()
	if err := ecrivain.Error(); err != nil {
		return "", err
	}
	return ExportFilename(table), nil
}
