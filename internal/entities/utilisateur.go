package entities

import (
	"parc-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Utilisateur struct {
	ID        string      `json:"id"`
	Prenom    string      `json:"prenom"`
	Nom       string      `json:"nom"`
	Email     string      `json:"email"`
	Telephone null.String `json:"telephone"`
	Service   string      `json:"service"`
	Poste     string      `json:"poste"`
	Statut    string      `json:"statut"`
	OwnerID   string      `json:"owner_id"`

	types.BaseEntity
}
