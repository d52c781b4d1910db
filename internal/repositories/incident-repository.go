package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/types"
)

const incidentFields = "id, titre, description, priorite, statut, materiel_id, utilisateur_id, date_creation, date_resolution, owner_id, created_at, updated_at"

const incidentJoinedFields = `i.id, i.titre, i.description, i.priorite, i.statut, i.date_creation, i.date_resolution, i.created_at, i.updated_at,
	m.id, m.nom, m.modele, m.numero_serie,
	u.id, u.prenom, u.nom, u.email`

var incidentListSpec = ListSpec{
	Table: "incidents",
	Alias: "i",
	Joins: []Join{
		{Expr: "materiel AS m ON m.id = i.materiel_id", JoinType: "LEFT"},
		{Expr: "utilisateurs AS u ON u.id = i.utilisateur_id", JoinType: "LEFT"},
	},
	FilterColumns:  []string{"statut", "priorite", "materiel_id", "utilisateur_id"},
	SearchColumns:  []string{"i.titre", "i.description", "m.nom"},
	SortColumns:    []string{"date_creation", "date_resolution", "priorite", "statut", "created_at"},
	DefaultOrderBy: "i.date_creation DESC",
}

type IncidentRepositoryInterface interface {
	ListIncidents(ctx context.Context, ownerID string, filter types.Filter) ([]dto.IncidentDTO, uint64, error)
	ListAllIncidents(ctx context.Context, ownerID string) ([]entities.Incident, error)
	FindIncident(ctx context.Context, ownerID string, id string) (*dto.IncidentDTO, error)
	FindIncidentEntity(ctx context.Context, ownerID string, id string) (*entities.Incident, error)
	CreateIncident(ctx context.Context, incident *entities.Incident) error
	UpdateIncident(ctx context.Context, incident *entities.Incident) error
	DeleteIncident(ctx context.Context, ownerID string, id string) error
}

type IncidentRepository struct {
	storage *pgxpool.Pool
}

func NewIncidentRepository(storage *pgxpool.Pool) IncidentRepositoryInterface {
	return &IncidentRepository{storage: storage}
}

func scanIncidentDTO(row pgx.Row) (*dto.IncidentDTO, error) {
	var i dto.IncidentDTO
	var dateCreation time.Time
	var dateResolution null.Time
	var createdAt, updatedAt time.Time

	var materielID, materielNom, materielModele, materielSerie null.String
	var utilisateurID, utilisateurPrenom, utilisateurNom, utilisateurEmail null.String

	err := row.Scan(
		&i.ID,
		&i.Titre,
		&i.Description,
		&i.Priorite,
		&i.Statut,
		&dateCreation,
		&dateResolution,
		&createdAt,
		&updatedAt,

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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	i.DateCreation = dateCreation.Format(dateLayout)
	i.DateResolution = formatDateNull(dateResolution)
	i.CreatedAt = createdAt.Format(timestampLayout)
	i.UpdatedAt = updatedAt.Format(timestampLayout)

	if materielID.Valid {
		i.Materiel = &dto.ShortMaterielDTO{
			ID:          materielID.String,
			Nom:         materielNom.String,
			Modele:      materielModele.String,
			NumeroSerie: materielSerie.String,
		}
	}
	if utilisateurID.Valid {
		i.Utilisateur = &dto.ShortUtilisateurDTO{
			ID:     utilisateurID.String,
			Prenom: utilisateurPrenom.String,
			Nom:    utilisateurNom.String,
			Email:  utilisateurEmail.String,
		}
	}
	return &i, nil
}

func scanIncident(row pgx.Row) (*entities.Incident, error) {
	var i entities.Incident
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&i.ID,
		&i.Titre,
		&i.Description,
		&i.Priorite,
		&i.Statut,
		&i.MaterielID,
		&i.UtilisateurID,
		&i.DateCreation,
		&i.DateResolution,
		&i.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	i.CreatedAt = &createdAt
	i.UpdatedAt = &updatedAt
	return &i, nil
}

func (r *IncidentRepository) ListIncidents(ctx context.Context, ownerID string, filter types.Filter) ([]dto.IncidentDTO, uint64, error) {
	builder := sq.Select(incidentJoinedFields).
		From(incidentListSpec.FromTarget()).
		PlaceholderFormat(sq.Dollar)
	builder = ApplyListConditions(builder, incidentListSpec, ownerID, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []dto.IncidentDTO
	for rows.Next() {
		i, err := scanIncidentDTO(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if filter.WithPagination {
		total, err = CountRows(ctx, r.storage, incidentListSpec, ownerID, filter)
		if err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (r *IncidentRepository) ListAllIncidents(ctx context.Context, ownerID string) ([]entities.Incident, error) {
	query := "SELECT " + incidentFields + " FROM incidents WHERE owner_id = $1 ORDER BY date_creation"

	rows, err := r.storage.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Incident
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *i)
	}
	return list, rows.Err()
}

func (r *IncidentRepository) FindIncident(ctx context.Context, ownerID string, id string) (*dto.IncidentDTO, error) {
	query := `
		SELECT ` + incidentJoinedFields + `
		FROM incidents i
			LEFT JOIN materiel m ON m.id = i.materiel_id
			LEFT JOIN utilisateurs u ON u.id = i.utilisateur_id
		WHERE i.id = $1 AND i.owner_id = $2
	`
	return scanIncidentDTO(r.storage.QueryRow(ctx, query, id, ownerID))
}

func (r *IncidentRepository) FindIncidentEntity(ctx context.Context, ownerID string, id string) (*entities.Incident, error) {
	query := "SELECT " + incidentFields + " FROM incidents WHERE id = $1 AND owner_id = $2"
	return scanIncident(r.storage.QueryRow(ctx, query, id, ownerID))
}

func (r *IncidentRepository) CreateIncident(ctx context.Context, i *entities.Incident) error {
	query := `
		INSERT INTO incidents (id, titre, description, priorite, statut, materiel_id, utilisateur_id, date_creation, date_resolution, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.storage.Exec(ctx, query,
		i.ID,
		i.Titre,
		i.Description,
		i.Priorite,
		i.Statut,
		i.MaterielID,
		i.UtilisateurID,
		i.DateCreation,
		i.DateResolution,
		i.OwnerID,
	)
	return err
}

func (r *IncidentRepository) UpdateIncident(ctx context.Context, i *entities.Incident) error {
	query := `
		UPDATE incidents
		SET titre = $1, description = $2, priorite = $3, statut = $4, materiel_id = $5, utilisateur_id = $6,
			date_resolution = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8 AND owner_id = $9
	`
	result, err := r.storage.Exec(ctx, query,
		i.Titre,
		i.Description,
		i.Priorite,
		i.Statut,
		i.MaterielID,
		i.UtilisateurID,
		i.DateResolution,
		i.ID,
		i.OwnerID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *IncidentRepository) DeleteIncident(ctx context.Context, ownerID string, id string) error {
	query := "DELETE FROM incidents WHERE id = $1 AND owner_id = $2"

	result, err := r.storage.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
