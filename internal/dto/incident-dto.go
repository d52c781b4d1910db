package dto

type CreateIncidentDTO struct {
	Titre         string  `json:"titre" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	Priorite      string  `json:"priorite" validate:"omitempty,priorite_incident"`
	Statut        string  `json:"statut" validate:"omitempty,statut_incident"`
	MaterielID    *string `json:"materiel_id" validate:"omitempty,uuid4"`
	UtilisateurID *string `json:"utilisateur_id" validate:"omitempty,uuid4"`
	DateCreation  *string `json:"date_creation" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateIncidentDTO struct {
	Titre          *string `json:"titre" validate:"omitempty"`
	Description    *string `json:"description" validate:"omitempty"`
	Priorite       *string `json:"priorite" validate:"omitempty,priorite_incident"`
	Statut         *string `json:"statut" validate:"omitempty,statut_incident"`
	MaterielID     *string `json:"materiel_id" validate:"omitempty,uuid4"`
	UtilisateurID  *string `json:"utilisateur_id" validate:"omitempty,uuid4"`
	DateResolution *string `json:"date_resolution" validate:"omitempty,datetime=2006-01-02"`
}

type IncidentDTO struct {
	ID             string               `json:"id"`
	Titre          string               `json:"titre"`
	Description    string               `json:"description"`
	Priorite       string               `json:"priorite"`
	Statut         string               `json:"statut"`
	Materiel       *ShortMaterielDTO    `json:"materiel,omitempty"`
	Utilisateur    *ShortUtilisateurDTO `json:"utilisateur,omitempty"`
	DateCreation   string               `json:"date_creation"`
	DateResolution *string              `json:"date_resolution"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}
