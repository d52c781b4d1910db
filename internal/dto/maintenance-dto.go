package dto

type CreateMaintenanceDTO struct {
	MaterielID      string   `json:"materiel_id" validate:"required,uuid4"`
	TypeMaintenance string   `json:"type_maintenance" validate:"required"`
	Probleme        string   `json:"probleme" validate:"required"`
	Technicien      string   `json:"technicien" validate:"required"`
	DateDebut       string   `json:"date_debut" validate:"required,datetime=2006-01-02"`
	DateFin         *string  `json:"date_fin" validate:"omitempty,datetime=2006-01-02"`
	Statut          string   `json:"statut" validate:"omitempty,statut_maintenance"`
	Cout            *float64 `json:"cout" validate:"omitempty,gte=0"`
	Notes           *string  `json:"notes" validate:"omitempty"`
}

type UpdateMaintenanceDTO struct {
	TypeMaintenance *string  `json:"type_maintenance" validate:"omitempty"`
	Probleme        *string  `json:"probleme" validate:"omitempty"`
	Technicien      *string  `json:"technicien" validate:"omitempty"`
	DateDebut       *string  `json:"date_debut" validate:"omitempty,datetime=2006-01-02"`
	DateFin         *string  `json:"date_fin" validate:"omitempty,datetime=2006-01-02"`
	Statut          *string  `json:"statut" validate:"omitempty,statut_maintenance"`
	Cout            *float64 `json:"cout" validate:"omitempty,gte=0"`
	Notes           *string  `json:"notes" validate:"omitempty"`
}

type MaintenanceDTO struct {
	ID              string            `json:"id"`
	Materiel        *ShortMaterielDTO `json:"materiel,omitempty"`
	TypeMaintenance string            `json:"type_maintenance"`
	Probleme        string            `json:"probleme"`
	Technicien      string            `json:"technicien"`
	DateDebut       string            `json:"date_debut"`
	DateFin         *string           `json:"date_fin"`
	Statut          string            `json:"statut"`
	Cout            *float64          `json:"cout"`
	Notes           *string           `json:"notes"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}
