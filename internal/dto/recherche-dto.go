package dto

// RechercheResultatDTO regroupe les correspondances d'une recherche globale
// par famille d'objets.
type RechercheResultatDTO struct {
	Materiels    []MaterielDTO    `json:"materiels"`
	Utilisateurs []UtilisateurDTO `json:"utilisateurs"`
	Attributions []AttributionDTO `json:"attributions"`
	Maintenances []MaintenanceDTO `json:"maintenances"`
	Incidents    []IncidentDTO    `json:"incidents"`
}
