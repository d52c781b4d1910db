package utils

import (
	"context"

	"parc-system/pkg/contextkeys"
	apperrors "parc-system/pkg/errors"
)

// GetOwnerIDFromCtx extrait l'identifiant du compte authentifié du contexte.
// Toute mutation exige un propriétaire (session explicite).
func GetOwnerIDFromCtx(ctx context.Context) (string, error) {
	ownerID, ok := ctx.Value(contextkeys.OwnerIDKey).(string)
	if !ok || ownerID == "" {
		return "", apperrors.ErrOwnerIDNotFoundInContext
	}
	return ownerID, nil
}
