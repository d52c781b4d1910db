package entities

import (
	"encoding/json"
	"time"

	"parc-system/pkg/types"

	"github.com/aarondl/null/v8"
)

// Types d'activité enregistrés dans l'historique.
const (
	ActiviteAcquisition    = "acquisition"
	ActiviteModification   = "modification"
	ActiviteSuppression    = "suppression"
	ActiviteAttribution    = "attribution"
	ActiviteRetour         = "retour"
	ActiviteMaintenanceDeb = "maintenance_debut"
	ActiviteMaintenanceFin = "maintenance_fin"
	ActiviteIncident       = "incident"
)

// HistoriqueActivite est une entrée du journal, en append-only: jamais
// modifiée ni supprimée, hors purge globale demandée par le propriétaire.
type HistoriqueActivite struct {
	ID            string          `json:"id"`
	TypeActivite  string          `json:"type_activite"`
	Titre         string          `json:"titre"`
	Description   null.String     `json:"description"`
	MaterielID    null.String     `json:"materiel_id"`
	UtilisateurID null.String     `json:"utilisateur_id"`
	Details       json.RawMessage `json:"details"`
	DateActivite  time.Time       `json:"date_activite"`
	OwnerID       string          `json:"owner_id"`

	types.BaseEntity
}
