package entities

import "strings"

// Statuts du matériel.
const (
	MaterielDisponible    = "Disponible"
	MaterielAttribue      = "Attribué"
	MaterielEnMaintenance = "En maintenance"
	MaterielHorsService   = "Hors service"
)

// Statuts d'une attribution.
const (
	AttributionActive    = "Actif"
	AttributionRetournee = "Retourné"
	AttributionEnAttente = "En attente"
)

// Statuts d'une maintenance.
const (
	MaintenancePlanifiee = "Planifié"
	MaintenanceEnCours   = "En cours"
	MaintenanceTerminee  = "Terminé"
	MaintenanceAnnulee   = "Annulé"
)

// Statuts d'un incident.
const (
	IncidentOuvert  = "Ouvert"
	IncidentEnCours = "En cours"
	IncidentResolu  = "Résolu"
	IncidentFerme   = "Fermé"
)

// Priorités d'un incident.
const (
	PrioriteFaible   = "Faible"
	PrioriteMoyenne  = "Moyenne"
	PrioriteElevee   = "Élevée"
	PrioriteCritique = "Critique"
)

// Statuts d'un utilisateur (membre du personnel).
const (
	UtilisateurActif    = "Actif"
	UtilisateurInactif  = "Inactif"
	UtilisateurSuspendu = "Suspendu"
)

func IsValidStatutMateriel(s string) bool {
	switch s {
	case MaterielDisponible, MaterielAttribue, MaterielEnMaintenance, MaterielHorsService:
		return true
	}
	return false
}

func IsValidStatutAttribution(s string) bool {
	switch s {
	case AttributionActive, AttributionRetournee, AttributionEnAttente:
		return true
	}
	return false
}

func IsValidStatutMaintenance(s string) bool {
	switch s {
	case MaintenancePlanifiee, MaintenanceEnCours, MaintenanceTerminee, MaintenanceAnnulee:
		return true
	}
	return false
}

func IsValidStatutIncident(s string) bool {
	switch s {
	case IncidentOuvert, IncidentEnCours, IncidentResolu, IncidentFerme:
		return true
	}
	return false
}

func IsValidStatutUtilisateur(s string) bool {
	switch s {
	case UtilisateurActif, UtilisateurInactif, UtilisateurSuspendu:
		return true
	}
	return false
}

// NormalizePriorite ramène une priorité, y compris les synonymes hérités de
// l'ancien schéma (Basse, Haute), vers le jeu canonique.
func NormalizePriorite(p string) (string, bool) {
	switch p {
	case PrioriteFaible, PrioriteMoyenne, PrioriteElevee, PrioriteCritique:
		return p, true
	case "Basse":
		return PrioriteFaible, true
	case "Haute":
		return PrioriteElevee, true
	}
	return "", false
}

// NormalizeStatutUtilisateur normalise un statut venant d'un import CSV,
// sans sensibilité à la casse, avec les synonymes anglais acceptés.
// Toute valeur inconnue retombe sur Actif.
func NormalizeStatutUtilisateur(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "actif", "active":
		return UtilisateurActif
	case "inactif", "inactive":
		return UtilisateurInactif
	case "suspendu", "suspended", "en congé", "en conge":
		return UtilisateurSuspendu
	}
	return UtilisateurActif
}
