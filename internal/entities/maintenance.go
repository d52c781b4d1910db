package entities

import (
	"time"

	"parc-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Maintenance struct {
	ID              string       `json:"id"`
	MaterielID      string       `json:"materiel_id"`
	TypeMaintenance string       `json:"type_maintenance"`
	Probleme        string       `json:"probleme"`
	Technicien      string       `json:"technicien"`
	DateDebut       time.Time    `json:"date_debut"`
	DateFin         null.Time    `json:"date_fin"`
	Statut          string       `json:"statut"`
	Cout            null.Float64 `json:"cout"`
	Notes           null.String  `json:"notes"`
	OwnerID         string       `json:"owner_id"`

	types.BaseEntity
}
