package entities

import (
	"time"

	"parc-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Attribution struct {
	ID              string      `json:"id"`
	MaterielID      string      `json:"materiel_id"`
	UtilisateurID   string      `json:"utilisateur_id"`
	DateAttribution time.Time   `json:"date_attribution"`
	DateRetour      null.Time   `json:"date_retour"`
	Statut          string      `json:"statut"`
	Notes           null.String `json:"notes"`
	OwnerID         string      `json:"owner_id"`

	types.BaseEntity
}
