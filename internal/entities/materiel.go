package entities

import (
	"time"

	"parc-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Materiel struct {
	ID          string       `json:"id"`
	Nom         string       `json:"nom"`
	Modele      string       `json:"modele"`
	NumeroSerie string       `json:"numero_serie"`
	Fournisseur null.String  `json:"fournisseur"`
	DateAchat   time.Time    `json:"date_achat"`
	PrixAchat   null.Float64 `json:"prix_achat"`
	GarantieFin null.Time    `json:"garantie_fin"`
	Description null.String  `json:"description"`
	Statut      string       `json:"statut"`
	OwnerID     string       `json:"owner_id"`

	types.BaseEntity
}
