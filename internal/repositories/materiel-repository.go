package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-system/internal/entities"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/types"
)

const materielFields = "id, nom, modele, numero_serie, fournisseur, date_achat, prix_achat, garantie_fin, description, statut, owner_id, created_at, updated_at"

var materielListSpec = ListSpec{
	Table:          "materiel",
	FilterColumns:  []string{"statut", "fournisseur", "modele"},
	SearchColumns:  []string{"nom", "modele", "numero_serie"},
	SortColumns:    []string{"nom", "date_achat", "prix_achat", "statut", "created_at"},
	DefaultOrderBy: "materiel.created_at DESC",
}

type MaterielRepositoryInterface interface {
	ListMateriels(ctx context.Context, ownerID string, filter types.Filter) ([]entities.Materiel, uint64, error)
	ListAllMateriels(ctx context.Context, ownerID string) ([]entities.Materiel, error)
	FindMateriel(ctx context.Context, ownerID string, id string) (*entities.Materiel, error)
	FindMaterielTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Materiel, error)
	CreateMateriel(ctx context.Context, materiel *entities.Materiel) error
	CreateMaterielTx(ctx context.Context, tx pgx.Tx, materiel *entities.Materiel) error
	UpdateMaterielTx(ctx context.Context, tx pgx.Tx, materiel *entities.Materiel) error
	UpdateStatutTx(ctx context.Context, tx pgx.Tx, ownerID string, id string, statut string) error
	DeleteMaterielTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error
}

type MaterielRepository struct {
	storage *pgxpool.Pool
}

func NewMaterielRepository(storage *pgxpool.Pool) MaterielRepositoryInterface {
	return &MaterielRepository{storage: storage}
}

func scanMateriel(row pgx.Row) (*entities.Materiel, error) {
	var m entities.Materiel
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&m.ID,
		&m.Nom,
		&m.Modele,
		&m.NumeroSerie,
		&m.Fournisseur,
		&m.DateAchat,
		&m.PrixAchat,
		&m.GarantieFin,
		&m.Description,
		&m.Statut,
		&m.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	m.CreatedAt = &createdAt
	m.UpdatedAt = &updatedAt
	return &m, nil
}

func collectMateriels(rows pgx.Rows) ([]entities.Materiel, error) {
	defer rows.Close()

	var list []entities.Materiel
	for rows.Next() {
		m, err := scanMateriel(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func (r *MaterielRepository) ListMateriels(ctx context.Context, ownerID string, filter types.Filter) ([]entities.Materiel, uint64, error) {
	builder := sq.Select(materielFields).
		From(materielListSpec.FromTarget()).
		PlaceholderFormat(sq.Dollar)
	builder = ApplyListConditions(builder, materielListSpec, ownerID, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	list, err := collectMateriels(rows)
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if filter.WithPagination {
		total, err = CountRows(ctx, r.storage, materielListSpec, ownerID, filter)
		if err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (r *MaterielRepository) ListAllMateriels(ctx context.Context, ownerID string) ([]entities.Materiel, error) {
	query := "SELECT " + materielFields + " FROM materiel WHERE owner_id = $1 ORDER BY created_at"

	rows, err := r.storage.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return collectMateriels(rows)
}

func (r *MaterielRepository) findMateriel(ctx context.Context, q querier, ownerID string, id string) (*entities.Materiel, error) {
	query := "SELECT " + materielFields + " FROM materiel WHERE id = $1 AND owner_id = $2"
	return scanMateriel(q.QueryRow(ctx, query, id, ownerID))
}

func (r *MaterielRepository) FindMateriel(ctx context.Context, ownerID string, id string) (*entities.Materiel, error) {
	return r.findMateriel(ctx, r.storage, ownerID, id)
}

func (r *MaterielRepository) FindMaterielTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Materiel, error) {
	return r.findMateriel(ctx, tx, ownerID, id)
}

func (r *MaterielRepository) createMateriel(ctx context.Context, q querier, m *entities.Materiel) error {
	query := `
		INSERT INTO materiel (id, nom, modele, numero_serie, fournisseur, date_achat, prix_achat, garantie_fin, description, statut, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := q.Exec(ctx, query,
		m.ID,
		m.Nom,
		m.Modele,
		m.NumeroSerie,
		m.Fournisseur,
		m.DateAchat,
		m.PrixAchat,
		m.GarantieFin,
		m.Description,
		m.Statut,
		m.OwnerID,
	)
	if isUniqueViolation(err) {
		return apperrors.ErrConflict
	}
	return err
}

func (r *MaterielRepository) CreateMateriel(ctx context.Context, materiel *entities.Materiel) error {
	return r.createMateriel(ctx, r.storage, materiel)
}

func (r *MaterielRepository) CreateMaterielTx(ctx context.Context, tx pgx.Tx, materiel *entities.Materiel) error {
	return r.createMateriel(ctx, tx, materiel)
}

func (r *MaterielRepository) UpdateMaterielTx(ctx context.Context, tx pgx.Tx, m *entities.Materiel) error {
	query := `
		UPDATE materiel
		SET nom = $1, modele = $2, numero_serie = $3, fournisseur = $4, date_achat = $5, prix_achat = $6,
			garantie_fin = $7, description = $8, statut = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10 AND owner_id = $11
	`
	result, err := tx.Exec(ctx, query,
		m.Nom,
		m.Modele,
		m.NumeroSerie,
		m.Fournisseur,
		m.DateAchat,
		m.PrixAchat,
		m.GarantieFin,
		m.Description,
		m.Statut,
		m.ID,
		m.OwnerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaterielRepository) UpdateStatutTx(ctx context.Context, tx pgx.Tx, ownerID string, id string, statut string) error {
	query := "UPDATE materiel SET statut = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2 AND owner_id = $3"

	result, err := tx.Exec(ctx, query, statut, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaterielRepository) DeleteMaterielTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error {
	query := "DELETE FROM materiel WHERE id = $1 AND owner_id = $2"

	result, err := tx.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
