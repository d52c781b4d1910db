package dto

// StatistiquesDTO agrège les compteurs du tableau de bord en une seule
// réponse, calculée côté serveur.
type StatistiquesDTO struct {
	TotalMateriels        int64          `json:"total_materiels"`
	MaterielsDisponibles  int64          `json:"materiels_disponibles"`
	MaterielsAttribues    int64          `json:"materiels_attribues"`
	MaterielsEnPanne      int64          `json:"materiels_en_panne"`
	MaintenancesEnCours   int64          `json:"maintenances_en_cours"`
	IncidentsOuverts      int64          `json:"incidents_ouverts"`
	UtilisateursActifs    int64          `json:"utilisateurs_actifs"`
	ValeurTotale          float64        `json:"valeur_totale"`
	RepartitionParStatut  map[string]int `json:"repartition_par_statut"`
	RepartitionParService map[string]int `json:"repartition_par_service"`
}

const (
	AlerteGarantieExpiree     = "garantie_expiree"
	AlerteMaintenanceRetard   = "maintenance_retard"
	AlerteMaterielHorsService = "materiel_hors_service"
	AlerteMaintenancePrevue   = "maintenance_prevue"
)

const (
	SeveriteCritique = "critique"
	SeveriteAlerte   = "alerte"
	SeveriteInfo     = "info"
)

type AlerteDTO struct {
	Type       string            `json:"type"`
	Severite   string            `json:"severite"`
	Titre      string            `json:"titre"`
	Message    string            `json:"message"`
	Materiel   *ShortMaterielDTO `json:"materiel,omitempty"`
	DateLimite *string           `json:"date_limite,omitempty"`
}
