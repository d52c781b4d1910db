package customvalidator

import (
	"regexp"

	"parc-system/internal/entities"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations enregistre les règles propres au domaine sur
// l'instance de validateur partagée.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"statut_materiel":    isStatutMateriel,
		"statut_attribution": isStatutAttribution,
		"statut_maintenance": isStatutMaintenance,
		"statut_incident":    isStatutIncident,
		"statut_utilisateur": isStatutUtilisateur,
		"priorite_incident":  isPrioriteIncident,
		"telephone_fr":       isFrenchPhoneNumber,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isStatutMateriel(fl validator.FieldLevel) bool {
	return entities.IsValidStatutMateriel(fl.Field().String())
}

func isStatutAttribution(fl validator.FieldLevel) bool {
	return entities.IsValidStatutAttribution(fl.Field().String())
}

func isStatutMaintenance(fl validator.FieldLevel) bool {
	return entities.IsValidStatutMaintenance(fl.Field().String())
}

func isStatutIncident(fl validator.FieldLevel) bool {
	return entities.IsValidStatutIncident(fl.Field().String())
}

func isStatutUtilisateur(fl validator.FieldLevel) bool {
	return entities.IsValidStatutUtilisateur(fl.Field().String())
}

// Les synonymes hérités (Basse, Haute) restent acceptés en entrée.
func isPrioriteIncident(fl validator.FieldLevel) bool {
	_, ok := entities.NormalizePriorite(fl.Field().String())
	return ok
}

func isFrenchPhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^(\+33|0)[1-9]\d{8}$`)
	return re.MatchString(fl.Field().String())
}
