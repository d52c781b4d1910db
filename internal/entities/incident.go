package entities

import (
	"time"

	"parc-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Incident struct {
	ID             string      `json:"id"`
	Titre          string      `json:"titre"`
	Description    string      `json:"description"`
	Priorite       string      `json:"priorite"`
	Statut         string      `json:"statut"`
	MaterielID     null.String `json:"materiel_id"`
	UtilisateurID  null.String `json:"utilisateur_id"`
	DateCreation   time.Time   `json:"date_creation"`
	DateResolution null.Time   `json:"date_resolution"`
	OwnerID        string      `json:"owner_id"`

	types.BaseEntity
}
