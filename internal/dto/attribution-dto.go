package dto

type CreateAttributionDTO struct {
	MaterielID      string  `json:"materiel_id" validate:"required,uuid4"`
	UtilisateurID   string  `json:"utilisateur_id" validate:"required,uuid4"`
	DateAttribution string  `json:"date_attribution" validate:"required,datetime=2006-01-02"`
	Statut          string  `json:"statut" validate:"omitempty,statut_attribution"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

type UpdateAttributionDTO struct {
	DateAttribution *string `json:"date_attribution" validate:"omitempty,datetime=2006-01-02"`
	DateRetour      *string `json:"date_retour" validate:"omitempty,datetime=2006-01-02"`
	Statut          *string `json:"statut" validate:"omitempty,statut_attribution"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

// AttributionDTO projette l'attribution avec ses références jointes sous
// forme typée, jamais en imbrication libre.
type AttributionDTO struct {
	ID              string               `json:"id"`
	Materiel        *ShortMaterielDTO    `json:"materiel,omitempty"`
	Utilisateur     *ShortUtilisateurDTO `json:"utilisateur,omitempty"`
	DateAttribution string               `json:"date_attribution"`
	DateRetour      *string              `json:"date_retour"`
	Statut          string               `json:"statut"`
	Notes           *string              `json:"notes"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}
