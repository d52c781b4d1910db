package dto

type CreateUtilisateurDTO struct {
	Prenom    string  `json:"prenom" validate:"required"`
	Nom       string  `json:"nom" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Telephone *string `json:"telephone" validate:"omitempty"`
	Service   string  `json:"service" validate:"required"`
	Poste     string  `json:"poste" validate:"required"`
	Statut    string  `json:"statut" validate:"omitempty,statut_utilisateur"`
}

type UpdateUtilisateurDTO struct {
	Prenom    *string `json:"prenom" validate:"omitempty"`
	Nom       *string `json:"nom" validate:"omitempty"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telephone *string `json:"telephone" validate:"omitempty"`
	Service   *string `json:"service" validate:"omitempty"`
	Poste     *string `json:"poste" validate:"omitempty"`
	Statut    *string `json:"statut" validate:"omitempty,statut_utilisateur"`
}

type UtilisateurDTO struct {
	ID        string  `json:"id"`
	Prenom    string  `json:"prenom"`
	Nom       string  `json:"nom"`
	Email     string  `json:"email"`
	Telephone *string `json:"telephone"`
	Service   string  `json:"service"`
	Poste     string  `json:"poste"`
	Statut    string  `json:"statut"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ShortUtilisateurDTO struct {
	ID     string `json:"id"`
	Prenom string `json:"prenom"`
	Nom    string `json:"nom"`
	Email  string `json:"email"`
}
