package services

import (
	"time"

	"github.com/aarondl/null/v8"

	"parc-system/internal/dto"
	"parc-system/internal/entities"
	apperrors "parc-system/pkg/errors"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02, 15:04:05"
)

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("date invalide: %q, format attendu AAAA-MM-JJ", value)
	}
	return t, nil
}

func parseDateNull(value *string) (null.Time, error) {
	if value == nil || *value == "" {
		return null.Time{}, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

func formatDateNull(t null.Time) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.Format(dateLayout)
	return &s
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timestampLayout)
}

func nullStringPtr(s null.String) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullFloatPtr(f null.Float64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func materielToDTO(m *entities.Materiel) *dto.MaterielDTO {
	return &dto.MaterielDTO{
		ID:          m.ID,
		Nom:         m.Nom,
		Modele:      m.Modele,
		NumeroSerie: m.NumeroSerie,
		Fournisseur: nullStringPtr(m.Fournisseur),
		DateAchat:   m.DateAchat.Format(dateLayout),
		PrixAchat:   nullFloatPtr(m.PrixAchat),
		GarantieFin: formatDateNull(m.GarantieFin),
		Description: nullStringPtr(m.Description),
		Statut:      m.Statut,
		CreatedAt:   formatTimestamp(m.CreatedAt),
		UpdatedAt:   formatTimestamp(m.UpdatedAt),
	}
}

func materielToShortDTO(m *entities.Materiel) *dto.ShortMaterielDTO {
	return &dto.ShortMaterielDTO{
		ID:          m.ID,
		Nom:         m.Nom,
		Modele:      m.Modele,
		NumeroSerie: m.NumeroSerie,
	}
}

func utilisateurToDTO(u *entities.Utilisateur) *dto.UtilisateurDTO {
	return &dto.UtilisateurDTO{
		ID:        u.ID,
		Prenom:    u.Prenom,
		Nom:       u.Nom,
		Email:     u.Email,
		Telephone: nullStringPtr(u.Telephone),
		Service:   u.Service,
		Poste:     u.Poste,
		Statut:    u.Statut,
		CreatedAt: formatTimestamp(u.CreatedAt),
		UpdatedAt: formatTimestamp(u.UpdatedAt),
	}
}

func incidentToDTO(i *entities.Incident, materiel *dto.ShortMaterielDTO, utilisateur *dto.ShortUtilisateurDTO) *dto.IncidentDTO {
	return &dto.IncidentDTO{
		ID:             i.ID,
		Titre:          i.Titre,
		Description:    i.Description,
		Priorite:       i.Priorite,
		Statut:         i.Statut,
		Materiel:       materiel,
		Utilisateur:    utilisateur,
		DateCreation:   i.DateCreation.Format(dateLayout),
		DateResolution: formatDateNull(i.DateResolution),
		CreatedAt:      formatTimestamp(i.CreatedAt),
		UpdatedAt:      formatTimestamp(i.UpdatedAt),
	}
}
