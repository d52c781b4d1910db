package dto

import "encoding/json"

type ActiviteDTO struct {
	ID           string               `json:"id"`
	TypeActivite string               `json:"type_activite"`
	Titre        string               `json:"titre"`
	Description  *string              `json:"description"`
	Materiel     *ShortMaterielDTO    `json:"materiel,omitempty"`
	Utilisateur  *ShortUtilisateurDTO `json:"utilisateur,omitempty"`
	Details      json.RawMessage      `json:"details,omitempty"`
	DateActivite string               `json:"date_activite"`
}
