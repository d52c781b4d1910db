package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parc-system/internal/entities"
	apperrors "parc-system/pkg/errors"
)

type PreferenceRepositoryInterface interface {
	FindPreference(ctx context.Context, ownerID string) (*entities.Preference, error)
	UpsertPreference(ctx context.Context, preference *entities.Preference) error
}

type PreferenceRepository struct {
	storage *pgxpool.Pool
}

func NewPreferenceRepository(storage *pgxpool.Pool) PreferenceRepositoryInterface {
	return &PreferenceRepository{storage: storage}
}

func (r *PreferenceRepository) FindPreference(ctx context.Context, ownerID string) (*entities.Preference, error) {
	query := `
		SELECT owner_id, theme, langue, notifications_email, notifications_push, alertes_garantie, alertes_maintenance
		FROM preferences
		WHERE owner_id = $1
	`
	var p entities.Preference
	err := r.storage.QueryRow(ctx, query, ownerID).Scan(
		&p.OwnerID,
		&p.Theme,
		&p.Langue,
		&p.NotificationsEmail,
		&p.NotificationsPush,
		&p.AlertesGarantie,
		&p.AlertesMaintenance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PreferenceRepository) UpsertPreference(ctx context.Context, p *entities.Preference) error {
	query := `
		INSERT INTO preferences (owner_id, theme, langue, notifications_email, notifications_push, alertes_garantie, alertes_maintenance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (owner_id) DO UPDATE
		SET theme = EXCLUDED.theme,
			langue = EXCLUDED.langue,
			notifications_email = EXCLUDED.notifications_email,
			notifications_push = EXCLUDED.notifications_push,
			alertes_garantie = EXCLUDED.alertes_garantie,
			alertes_maintenance = EXCLUDED.alertes_maintenance,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.storage.Exec(ctx, query,
		p.OwnerID,
		p.Theme,
		p.Langue,
		p.NotificationsEmail,
		p.NotificationsPush,
		p.AlertesGarantie,
		p.AlertesMaintenance,
	)
	return err
}
