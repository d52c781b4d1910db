package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Erreurs sentinelles partagées par les services et les contrôleurs.
var (
	// Authentification et jetons
	ErrInvalidSigningMethod = errors.New("méthode de signature du jeton invalide")
	ErrInvalidToken         = errors.New("jeton invalide")
	ErrTokenExpired         = errors.New("le jeton a expiré")
	ErrTokenIsNotRefresh    = errors.New("le jeton n'est pas un jeton de rafraîchissement")
	ErrTokenIsNotAccess     = errors.New("le jeton n'est pas un jeton d'accès")
	ErrEmptyAuthHeader      = errors.New("en-tête d'autorisation absent")
	ErrInvalidAuthHeader    = errors.New("format d'en-tête d'autorisation invalide")
	ErrInvalidCredentials   = errors.New("identifiants invalides")
	ErrNotAuthenticated     = errors.New("vous devez être connecté pour effectuer cette action")
	ErrAccountLocked        = errors.New("compte temporairement verrouillé, réessayez plus tard")
	ErrEmailAlreadyUsed     = errors.New("un compte existe déjà avec cette adresse e-mail")

	// Contexte de requête
	ErrOwnerIDNotFoundInContext = errors.New("identifiant du compte absent du contexte de la requête")

	// Génériques
	ErrNotFound   = errors.New("enregistrement introuvable")
	ErrConflict   = errors.New("opération en conflit avec l'état actuel")
	ErrBadRequest = errors.New("requête invalide")
)

// HttpError enveloppe une erreur métier avec le code HTTP et le message
// destiné au client. Err est la cause interne, jamais sérialisée.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// InvalidInputError signale une validation métier échouée avant tout accès
// au stockage.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpStatusFor traduit la taxonomie d'erreurs en code HTTP.
func HttpStatusFor(err error) int {
	var invalidInput *InvalidInputError
	switch {
	case errors.As(err, &invalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrEmailAlreadyUsed):
		return http.StatusConflict
	case errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrEmptyAuthHeader),
		errors.Is(err, ErrInvalidAuthHeader),
		errors.Is(err, ErrOwnerIDNotFoundInContext):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountLocked):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
