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

const attributionFields = "id, materiel_id, utilisateur_id, date_attribution, date_retour, statut, notes, owner_id, created_at, updated_at"

const attributionJoinedFields = `a.id, a.date_attribution, a.date_retour, a.statut, a.notes, a.created_at, a.updated_at,
	m.id, m.nom, m.modele, m.numero_serie,
	u.id, u.prenom, u.nom, u.email`

var attributionListSpec = ListSpec{
	Table: "attributions",
	Alias: "a",
	Joins: []Join{
		{Expr: "materiel AS m ON m.id = a.materiel_id"},
		{Expr: "utilisateurs AS u ON u.id = a.utilisateur_id"},
	},
	FilterColumns:  []string{"statut", "materiel_id", "utilisateur_id"},
	SearchColumns:  []string{"m.nom", "m.numero_serie", "u.nom", "u.prenom"},
	SortColumns:    []string{"date_attribution", "date_retour", "statut", "created_at"},
	DefaultOrderBy: "a.date_attribution DESC",
}

type AttributionRepositoryInterface interface {
	ListAttributions(ctx context.Context, ownerID string, filter types.Filter) ([]dto.AttributionDTO, uint64, error)
	ListAllAttributions(ctx context.Context, ownerID string) ([]entities.Attribution, error)
	FindAttribution(ctx context.Context, ownerID string, id string) (*dto.AttributionDTO, error)
	FindAttributionTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Attribution, error)
	CreateAttributionTx(ctx context.Context, tx pgx.Tx, attribution *entities.Attribution) error
	UpdateAttributionTx(ctx context.Context, tx pgx.Tx, attribution *entities.Attribution) error
	DeleteAttributionTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error
}

type AttributionRepository struct {
	storage *pgxpool.Pool
}

func NewAttributionRepository(storage *pgxpool.Pool) AttributionRepositoryInterface {
	return &AttributionRepository{storage: storage}
}

func scanAttributionDTO(row pgx.Row) (*dto.AttributionDTO, error) {
	var a dto.AttributionDTO
	var materiel dto.ShortMaterielDTO
	var utilisateur dto.ShortUtilisateurDTO
	var dateAttribution time.Time
	var dateRetour null.Time
	var notes null.String
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&a.ID,
		&dateAttribution,
		&dateRetour,
		&a.Statut,
		&notes,
		&createdAt,
		&updatedAt,

		&materiel.ID,
		&materiel.Nom,
		&materiel.Modele,
		&materiel.NumeroSerie,

		&utilisateur.ID,
		&utilisateur.Prenom,
		&utilisateur.Nom,
		&utilisateur.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	a.DateAttribution = dateAttribution.Format(dateLayout)
	a.DateRetour = formatDateNull(dateRetour)
	a.Notes = nullStringPtr(notes)
	a.CreatedAt = createdAt.Format(timestampLayout)
	a.UpdatedAt = updatedAt.Format(timestampLayout)
	a.Materiel = &materiel
	a.Utilisateur = &utilisateur
	return &a, nil
}

func scanAttribution(row pgx.Row) (*entities.Attribution, error) {
	var a entities.Attribution
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&a.ID,
		&a.MaterielID,
		&a.UtilisateurID,
		&a.DateAttribution,
		&a.DateRetour,
		&a.Statut,
		&a.Notes,
		&a.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	a.CreatedAt = &createdAt
	a.UpdatedAt = &updatedAt
	return &a, nil
}

func (r *AttributionRepository) ListAttributions(ctx context.Context, ownerID string, filter types.Filter) ([]dto.AttributionDTO, uint64, error) {
	builder := sq.Select(attributionJoinedFields).
		From(attributionListSpec.FromTarget()).
		PlaceholderFormat(sq.Dollar)
	builder = ApplyListConditions(builder, attributionListSpec, ownerID, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []dto.AttributionDTO
	for rows.Next() {
		a, err := scanAttributionDTO(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if filter.WithPagination {
		total, err = CountRows(ctx, r.storage, attributionListSpec, ownerID, filter)
		if err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (r *AttributionRepository) ListAllAttributions(ctx context.Context, ownerID string) ([]entities.Attribution, error) {
	query := "SELECT " + attributionFields + " FROM attributions WHERE owner_id = $1 ORDER BY date_attribution"

	rows, err := r.storage.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Attribution
	for rows.Next() {
		a, err := scanAttribution(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *a)
	}
	return list, rows.Err()
}

func (r *AttributionRepository) FindAttribution(ctx context.Context, ownerID string, id string) (*dto.AttributionDTO, error) {
	query := `
		SELECT ` + attributionJoinedFields + `
		FROM attributions a
			JOIN materiel m ON m.id = a.materiel_id
			JOIN utilisateurs u ON u.id = a.utilisateur_id
		WHERE a.id = $1 AND a.owner_id = $2
	`
	return scanAttributionDTO(r.storage.QueryRow(ctx, query, id, ownerID))
}

func (r *AttributionRepository) FindAttributionTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Attribution, error) {
	query := "SELECT " + attributionFields + " FROM attributions WHERE id = $1 AND owner_id = $2"
	return scanAttribution(tx.QueryRow(ctx, query, id, ownerID))
}

func (r *AttributionRepository) CreateAttributionTx(ctx context.Context, tx pgx.Tx, a *entities.Attribution) error {
	query := `
		INSERT INTO attributions (id, materiel_id, utilisateur_id, date_attribution, date_retour, statut, notes, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := tx.Exec(ctx, query,
		a.ID,
		a.MaterielID,
		a.UtilisateurID,
		a.DateAttribution,
		a.DateRetour,
		a.Statut,
		a.Notes,
		a.OwnerID,
	)
	return err
}

func (r *AttributionRepository) UpdateAttributionTx(ctx context.Context, tx pgx.Tx, a *entities.Attribution) error {
	query := `
		UPDATE attributions
		SET date_attribution = $1, date_retour = $2, statut = $3, notes = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND owner_id = $6
	`
	result, err := tx.Exec(ctx, query,
		a.DateAttribution,
		a.DateRetour,
		a.Statut,
		a.Notes,
		a.ID,
		a.OwnerID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AttributionRepository) DeleteAttributionTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error {
	query := "DELETE FROM attributions WHERE id = $1 AND owner_id = $2"

	result, err := tx.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
