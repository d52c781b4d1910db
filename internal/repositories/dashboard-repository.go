package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
)

type DashboardRepositoryInterface interface {
	GetStatistiques(ctx context.Context, ownerID string) (*dto.StatistiquesDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

func (r *DashboardRepository) countBy(ctx context.Context, query string, ownerID string) (map[string]int, error) {
	rows, err := r.storage.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		result[key] = count
	}
	return result, rows.Err()
}

// GetStatistiques agrège les compteurs du tableau de bord côté SQL plutôt
// que de rapatrier les tables entières.
func (r *DashboardRepository) GetStatistiques(ctx context.Context, ownerID string) (*dto.StatistiquesDTO, error) {
	stats := &dto.StatistiquesDTO{}

	parStatut, err := r.countBy(ctx,
		"SELECT statut, COUNT(*) FROM materiel WHERE owner_id = $1 GROUP BY statut", ownerID)
	if err != nil {
		return nil, err
	}
	stats.RepartitionParStatut = parStatut
	for _, count := range parStatut {
		stats.TotalMateriels += int64(count)
	}
	stats.MaterielsDisponibles = int64(parStatut[entities.MaterielDisponible])
	stats.MaterielsAttribues = int64(parStatut[entities.MaterielAttribue])
	stats.MaterielsEnPanne = int64(parStatut[entities.MaterielHorsService])

	parService, err := r.countBy(ctx,
		"SELECT service, COUNT(*) FROM utilisateurs WHERE owner_id = $1 GROUP BY service", ownerID)
	if err != nil {
		return nil, err
	}
	stats.RepartitionParService = parService

	err = r.storage.QueryRow(ctx,
		"SELECT COALESCE(SUM(prix_achat), 0) FROM materiel WHERE owner_id = $1", ownerID,
	).Scan(&stats.ValeurTotale)
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM maintenance WHERE owner_id = $1 AND statut = $2",
		ownerID, entities.MaintenanceEnCours,
	).Scan(&stats.MaintenancesEnCours)
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM incidents WHERE owner_id = $1 AND statut IN ($2, $3)",
		ownerID, entities.IncidentOuvert, entities.IncidentEnCours,
	).Scan(&stats.IncidentsOuverts)
	if err != nil {
		return nil, err
	}

	err = r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM utilisateurs WHERE owner_id = $1 AND statut = $2",
		ownerID, entities.UtilisateurActif,
	).Scan(&stats.UtilisateursActifs)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
