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

const utilisateurFields = "id, prenom, nom, email, telephone, service, poste, statut, owner_id, created_at, updated_at"

var utilisateurListSpec = ListSpec{
	Table:          "utilisateurs",
	FilterColumns:  []string{"statut", "service", "poste"},
	SearchColumns:  []string{"prenom", "nom", "email", "service"},
	SortColumns:    []string{"nom", "prenom", "service", "statut", "created_at"},
	DefaultOrderBy: "utilisateurs.nom, utilisateurs.prenom",
}

type UtilisateurRepositoryInterface interface {
	ListUtilisateurs(ctx context.Context, ownerID string, filter types.Filter) ([]entities.Utilisateur, uint64, error)
	ListAllUtilisateurs(ctx context.Context, ownerID string) ([]entities.Utilisateur, error)
	FindUtilisateur(ctx context.Context, ownerID string, id string) (*entities.Utilisateur, error)
	CreateUtilisateur(ctx context.Context, utilisateur *entities.Utilisateur) error
	CreateUtilisateurTx(ctx context.Context, tx pgx.Tx, utilisateur *entities.Utilisateur) error
	UpdateUtilisateur(ctx context.Context, utilisateur *entities.Utilisateur) error
	DeleteUtilisateur(ctx context.Context, ownerID string, id string) error
}

type UtilisateurRepository struct {
	storage *pgxpool.Pool
}

func NewUtilisateurRepository(storage *pgxpool.Pool) UtilisateurRepositoryInterface {
	return &UtilisateurRepository{storage: storage}
}

func scanUtilisateur(row pgx.Row) (*entities.Utilisateur, error) {
	var u entities.Utilisateur
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&u.ID,
		&u.Prenom,
		&u.Nom,
		&u.Email,
		&u.Telephone,
		&u.Service,
		&u.Poste,
		&u.Statut,
		&u.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	u.CreatedAt = &createdAt
	u.UpdatedAt = &updatedAt
	return &u, nil
}

func collectUtilisateurs(rows pgx.Rows) ([]entities.Utilisateur, error) {
	defer rows.Close()

	var list []entities.Utilisateur
	for rows.Next() {
		u, err := scanUtilisateur(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *u)
	}
	return list, rows.Err()
}

func (r *UtilisateurRepository) ListUtilisateurs(ctx context.Context, ownerID string, filter types.Filter) ([]entities.Utilisateur, uint64, error) {
	builder := sq.Select(utilisateurFields).
		From(utilisateurListSpec.FromTarget()).
		PlaceholderFormat(sq.Dollar)
	builder = ApplyListConditions(builder, utilisateurListSpec, ownerID, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	list, err := collectUtilisateurs(rows)
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if filter.WithPagination {
		total, err = CountRows(ctx, r.storage, utilisateurListSpec, ownerID, filter)
		if err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (r *UtilisateurRepository) ListAllUtilisateurs(ctx context.Context, ownerID string) ([]entities.Utilisateur, error) {
	query := "SELECT " + utilisateurFields + " FROM utilisateurs WHERE owner_id = $1 ORDER BY nom, prenom"

	rows, err := r.storage.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	return collectUtilisateurs(rows)
}

func (r *UtilisateurRepository) FindUtilisateur(ctx context.Context, ownerID string, id string) (*entities.Utilisateur, error) {
	query := "SELECT " + utilisateurFields + " FROM utilisateurs WHERE id = $1 AND owner_id = $2"
	return scanUtilisateur(r.storage.QueryRow(ctx, query, id, ownerID))
}

func (r *UtilisateurRepository) createUtilisateur(ctx context.Context, q querier, u *entities.Utilisateur) error {
	query := `
		INSERT INTO utilisateurs (id, prenom, nom, email, telephone, service, poste, statut, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		u.ID,
		u.Prenom,
		u.Nom,
		u.Email,
		u.Telephone,
		u.Service,
		u.Poste,
		u.Statut,
		u.OwnerID,
	)
	return err
}

func (r *UtilisateurRepository) CreateUtilisateur(ctx context.Context, utilisateur *entities.Utilisateur) error {
	return r.createUtilisateur(ctx, r.storage, utilisateur)
}

func (r *UtilisateurRepository) CreateUtilisateurTx(ctx context.Context, tx pgx.Tx, utilisateur *entities.Utilisateur) error {
	return r.createUtilisateur(ctx, tx, utilisateur)
}

func (r *UtilisateurRepository) UpdateUtilisateur(ctx context.Context, u *entities.Utilisateur) error {
	query := `
		UPDATE utilisateurs
		SET prenom = $1, nom = $2, email = $3, telephone = $4, service = $5, poste = $6, statut = $7, updated_at = CURRENT_TIMESTAMP
		WHERE id = $8 AND owner_id = $9
	`
	result, err := r.storage.Exec(ctx, query,
		u.Prenom,
		u.Nom,
		u.Email,
		u.Telephone,
		u.Service,
		u.Poste,
		u.Statut,
		u.ID,
		u.OwnerID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UtilisateurRepository) DeleteUtilisateur(ctx context.Context, ownerID string, id string) error {
	query := "DELETE FROM utilisateurs WHERE id = $1 AND owner_id = $2"

	result, err := r.storage.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
