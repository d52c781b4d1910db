package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-system/internal/entities"
	apperrors "parc-system/pkg/errors"
)

type CompteRepositoryInterface interface {
	CreateCompteWithProfile(ctx context.Context, compte *entities.Compte, profile *entities.Profile) error
	FindCompteByEmail(ctx context.Context, email string) (*entities.Compte, error)
	FindCompte(ctx context.Context, id string) (*entities.Compte, error)
	FindProfile(ctx context.Context, id string) (*entities.Profile, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

type CompteRepository struct {
	storage *pgxpool.Pool
}

func NewCompteRepository(storage *pgxpool.Pool) CompteRepositoryInterface {
	return &CompteRepository{storage: storage}
}

// CreateCompteWithProfile insère le compte et son profil dans une même
// transaction: jamais de compte sans profil.
func (r *CompteRepository) CreateCompteWithProfile(ctx context.Context, compte *entities.Compte, profile *entities.Profile) error {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		"INSERT INTO comptes (id, email, password_hash) VALUES ($1, $2, $3)",
		compte.ID, compte.Email, compte.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyUsed
		}
		return err
	}

	_, err = tx.Exec(ctx,
		"INSERT INTO profiles (id, email, prenom, nom) VALUES ($1, $2, $3, $4)",
		profile.ID, profile.Email, profile.Prenom, profile.Nom,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanCompte(row pgx.Row) (*entities.Compte, error) {
	var c entities.Compte
	var createdAt, updatedAt time.Time

	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	c.CreatedAt = &createdAt
	c.UpdatedAt = &updatedAt
	return &c, nil
}

func (r *CompteRepository) FindCompteByEmail(ctx context.Context, email string) (*entities.Compte, error) {
	query := "SELECT id, email, password_hash, created_at, updated_at FROM comptes WHERE email = $1"
	return scanCompte(r.storage.QueryRow(ctx, query, email))
}

func (r *CompteRepository) FindCompte(ctx context.Context, id string) (*entities.Compte, error) {
	query := "SELECT id, email, password_hash, created_at, updated_at FROM comptes WHERE id = $1"
	return scanCompte(r.storage.QueryRow(ctx, query, id))
}

func (r *CompteRepository) FindProfile(ctx context.Context, id string) (*entities.Profile, error) {
	query := "SELECT id, email, prenom, nom FROM profiles WHERE id = $1"

	var p entities.Profile
	err := r.storage.QueryRow(ctx, query, id).Scan(&p.ID, &p.Email, &p.Prenom, &p.Nom)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *CompteRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	query := "UPDATE comptes SET password_hash = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2"

	result, err := r.storage.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
