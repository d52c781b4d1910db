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

const maintenanceFields = "id, materiel_id, type_maintenance, probleme, technicien, date_debut, date_fin, statut, cout, notes, owner_id, created_at, updated_at"

const maintenanceJoinedFields = `mt.id, mt.type_maintenance, mt.probleme, mt.technicien, mt.date_debut, mt.date_fin, mt.statut, mt.cout, mt.notes, mt.created_at, mt.updated_at,
	m.id, m.nom, m.modele, m.numero_serie`

var maintenanceListSpec = ListSpec{
	Table: "maintenance",
	Alias: "mt",
	Joins: []Join{
		{Expr: "materiel AS m ON m.id = mt.materiel_id"},
	},
	FilterColumns:  []string{"statut", "type_maintenance", "materiel_id", "technicien"},
	SearchColumns:  []string{"m.nom", "m.numero_serie", "mt.probleme", "mt.technicien"},
	SortColumns:    []string{"date_debut", "date_fin", "statut", "cout", "created_at"},
	DefaultOrderBy: "mt.date_debut DESC",
}

type MaintenanceRepositoryInterface interface {
	ListMaintenances(ctx context.Context, ownerID string, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error)
	ListAllMaintenances(ctx context.Context, ownerID string) ([]entities.Maintenance, error)
	FindMaintenance(ctx context.Context, ownerID string, id string) (*dto.MaintenanceDTO, error)
	FindMaintenanceTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Maintenance, error)
	CreateMaintenanceTx(ctx context.Context, tx pgx.Tx, maintenance *entities.Maintenance) error
	UpdateMaintenanceTx(ctx context.Context, tx pgx.Tx, maintenance *entities.Maintenance) error
	DeleteMaintenanceTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error
}

type MaintenanceRepository struct {
	storage *pgxpool.Pool
}

func NewMaintenanceRepository(storage *pgxpool.Pool) MaintenanceRepositoryInterface {
	return &MaintenanceRepository{storage: storage}
}

func scanMaintenanceDTO(row pgx.Row) (*dto.MaintenanceDTO, error) {
	var mt dto.MaintenanceDTO
	var materiel dto.ShortMaterielDTO
	var dateDebut time.Time
	var dateFin null.Time
	var cout null.Float64
	var notes null.String
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&mt.ID,
		&mt.TypeMaintenance,
		&mt.Probleme,
		&mt.Technicien,
		&dateDebut,
		&dateFin,
		&mt.Statut,
		&cout,
		&notes,
		&createdAt,
		&updatedAt,

		&materiel.ID,
		&materiel.Nom,
		&materiel.Modele,
		&materiel.NumeroSerie,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	mt.DateDebut = dateDebut.Format(dateLayout)
	mt.DateFin = formatDateNull(dateFin)
	mt.Cout = nullFloatPtr(cout)
	mt.Notes = nullStringPtr(notes)
	mt.CreatedAt = createdAt.Format(timestampLayout)
	mt.UpdatedAt = updatedAt.Format(timestampLayout)
	mt.Materiel = &materiel
	return &mt, nil
}

func scanMaintenance(row pgx.Row) (*entities.Maintenance, error) {
	var m entities.Maintenance
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&m.ID,
		&m.MaterielID,
		&m.TypeMaintenance,
		&m.Probleme,
		&m.Technicien,
		&m.DateDebut,
		&m.DateFin,
		&m.Statut,
		&m.Cout,
		&m.Notes,
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

func (r *MaintenanceRepository) ListMaintenances(ctx context.Context, ownerID string, filter types.Filter) ([]dto.MaintenanceDTO, uint64, error) {
	builder := sq.Select(maintenanceJoinedFields).
		From(maintenanceListSpec.FromTarget()).
		PlaceholderFormat(sq.Dollar)
	builder = ApplyListConditions(builder, maintenanceListSpec, ownerID, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []dto.MaintenanceDTO
	for rows.Next() {
		mt, err := scanMaintenanceDTO(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *mt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total uint64
	if filter.WithPagination {
		total, err = CountRows(ctx, r.storage, maintenanceListSpec, ownerID, filter)
		if err != nil {
			return nil, 0, err
		}
	}
	return list, total, nil
}

func (r *MaintenanceRepository) ListAllMaintenances(ctx context.Context, ownerID string) ([]entities.Maintenance, error) {
	query := "SELECT " + maintenanceFields + " FROM maintenance WHERE owner_id = $1 ORDER BY date_debut"

	rows, err := r.storage.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func (r *MaintenanceRepository) FindMaintenance(ctx context.Context, ownerID string, id string) (*dto.MaintenanceDTO, error) {
	query := `
		SELECT ` + maintenanceJoinedFields + `
		FROM maintenance mt
			JOIN materiel m ON m.id = mt.materiel_id
		WHERE mt.id = $1 AND mt.owner_id = $2
	`
	return scanMaintenanceDTO(r.storage.QueryRow(ctx, query, id, ownerID))
}

func (r *MaintenanceRepository) FindMaintenanceTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) (*entities.Maintenance, error) {
	query := "SELECT " + maintenanceFields + " FROM maintenance WHERE id = $1 AND owner_id = $2"
	return scanMaintenance(tx.QueryRow(ctx, query, id, ownerID))
}

func (r *MaintenanceRepository) CreateMaintenanceTx(ctx context.Context, tx pgx.Tx, m *entities.Maintenance) error {
	query := `
		INSERT INTO maintenance (id, materiel_id, type_maintenance, probleme, technicien, date_debut, date_fin, statut, cout, notes, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := tx.Exec(ctx, query,
		m.ID,
		m.MaterielID,
		m.TypeMaintenance,
		m.Probleme,
		m.Technicien,
		m.DateDebut,
		m.DateFin,
		m.Statut,
		m.Cout,
		m.Notes,
		m.OwnerID,
	)
	return err
}

func (r *MaintenanceRepository) UpdateMaintenanceTx(ctx context.Context, tx pgx.Tx, m *entities.Maintenance) error {
	query := `
		UPDATE maintenance
		SET type_maintenance = $1, probleme = $2, technicien = $3, date_debut = $4, date_fin = $5,
			statut = $6, cout = $7, notes = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9 AND owner_id = $10
	`
	result, err := tx.Exec(ctx, query,
		m.TypeMaintenance,
		m.Probleme,
		m.Technicien,
		m.DateDebut,
		m.DateFin,
		m.Statut,
		m.Cout,
		m.Notes,
		m.ID,
		m.OwnerID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) DeleteMaintenanceTx(ctx context.Context, tx pgx.Tx, ownerID string, id string) error {
	query := "DELETE FROM maintenance WHERE id = $1 AND owner_id = $2"

	result, err := tx.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
