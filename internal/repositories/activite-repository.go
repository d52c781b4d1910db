package repositories

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
)

// MaxActivites borne le journal retourné au client, les entrées les plus
// récentes d'abord.
const MaxActivites = 1000

type ActiviteRepositoryInterface interface {
	CreateActivite(ctx context.Context, activite *entities.HistoriqueActivite) error
	ListActivites(ctx context.Context, ownerID string, limit int) ([]dto.ActiviteDTO, error)
	DeleteAllActivites(ctx context.Context, ownerID string) error
}

type ActiviteRepository struct {
	storage *pgxpool.Pool
}

func NewActiviteRepository(storage *pgxpool.Pool) ActiviteRepositoryInterface {
	return &ActiviteRepository{storage: storage}
}

func (r *ActiviteRepository) CreateActivite(ctx context.Context, a *entities.HistoriqueActivite) error {
	query := `
		INSERT INTO historique_activites (id, type_activite, titre, description, materiel_id, utilisateur_id, details, date_activite, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var details interface{}
	if len(a.Details) > 0 {
		details = []byte(a.Details)
	}

	_, err := r.storage.Exec(ctx, query,
		a.ID,
		a.TypeActivite,
		a.Titre,
		a.Description,
		a.MaterielID,
		a.UtilisateurID,
		details,
		a.DateActivite,
		a.OwnerID,
	)
	return err
}

func (r *ActiviteRepository) ListActivites(ctx context.Context, ownerID string, limit int) ([]dto.ActiviteDTO, error) {
	if limit <= 0 || limit > MaxActivites {
		limit = MaxActivites
	}

	query := `
		SELECT h.id, h.type_activite, h.titre, h.description, h.details, h.date_activite,
			m.id, m.nom, m.modele, m.numero_serie,
			u.id, u.prenom, u.nom, u.email
		FROM historique_activites h
			LEFT JOIN materiel m ON m.id = h.materiel_id
			LEFT JOIN utilisateurs u ON u.id = h.utilisateur_id
		WHERE h.owner_id = $1
		ORDER BY h.date_activite DESC
		LIMIT $2
	`
	rows, err := r.storage.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []dto.ActiviteDTO
	for rows.Next() {
		var a dto.ActiviteDTO
		var description null.String
		var details []byte
		var dateActivite time.Time

		var materielID, materielNom, materielModele, materielSerie null.String
		var utilisateurID, utilisateurPrenom, utilisateurNom, utilisateurEmail null.String

		err := rows.Scan(
			&a.ID,
			&a.TypeActivite,
			&a.Titre,
			&description,
			&details,
			&dateActivite,

			&materielID,
			&materielNom,
			&materielModele,
			&materielSerie,

			&utilisateurID,
			&utilisateurPrenom,
			&utilisateurNom,
			&utilisateurEmail,
		)
		if err != nil {
			return nil, err
		}

		a.Description = nullStringPtr(description)
		a.Details = details
		a.DateActivite = dateActivite.Format(timestampLayout)

		if materielID.Valid {
			a.Materiel = &dto.ShortMaterielDTO{
				ID:          materielID.String,
				Nom:         materielNom.String,
				Modele:      materielModele.String,
				NumeroSerie: materielSerie.String,
			}
		}
		if utilisateurID.Valid {
			a.Utilisateur = &dto.ShortUtilisateurDTO{
				ID:     utilisateurID.String,
				Prenom: utilisateurPrenom.String,
				Nom:    utilisateurNom.String,
				Email:  utilisateurEmail.String,
			}
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *ActiviteRepository) DeleteAllActivites(ctx context.Context, ownerID string) error {
	_, err := r.storage.Exec(ctx, "DELETE FROM historique_activites WHERE owner_id = $1", ownerID)
	return err
}
