package dto

type CreateMaterielDTO struct {
	Nom         string   `json:"nom" validate:"required"`
	Modele      string   `json:"modele" validate:"required"`
	NumeroSerie string   `json:"numero_serie" validate:"required"`
	Fournisseur *string  `json:"fournisseur" validate:"omitempty"`
	DateAchat   string   `json:"date_achat" validate:"required,datetime=2006-01-02"`
	PrixAchat   *float64 `json:"prix_achat" validate:"omitempty,gte=0"`
	GarantieFin *string  `json:"garantie_fin" validate:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description" validate:"omitempty"`
	Statut      string   `json:"statut" validate:"omitempty,statut_materiel"`
}

type UpdateMaterielDTO struct {
	Nom         *string  `json:"nom" validate:"omitempty"`
	Modele      *string  `json:"modele" validate:"omitempty"`
	NumeroSerie *string  `json:"numero_serie" validate:"omitempty"`
	Fournisseur *string  `json:"fournisseur" validate:"omitempty"`
	DateAchat   *string  `json:"date_achat" validate:"omitempty,datetime=2006-01-02"`
	PrixAchat   *float64 `json:"prix_achat" validate:"omitempty,gte=0"`
	GarantieFin *string  `json:"garantie_fin" validate:"omitempty,datetime=2006-01-02"`
	Description *string  `json:"description" validate:"omitempty"`
	Statut      *string  `json:"statut" validate:"omitempty,statut_materiel"`
}

type MaterielDTO struct {
	ID          string   `json:"id"`
	Nom         string   `json:"nom"`
	Modele      string   `json:"modele"`
	NumeroSerie string   `json:"numero_serie"`
	Fournisseur *string  `json:"fournisseur"`
	DateAchat   string   `json:"date_achat"`
	PrixAchat   *float64 `json:"prix_achat"`
	GarantieFin *string  `json:"garantie_fin"`
	Description *string  `json:"description"`
	Statut      string   `json:"statut"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

type ShortMaterielDTO struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Modele      string `json:"modele"`
	NumeroSerie string `json:"numero_serie"`
}
