package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "parc-system/pkg/errors"
)

// uuidParam extrait et vérifie un identifiant UUID de l'URL.
func uuidParam(ctx echo.Context, name string) (string, error) {
	id := ctx.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.NewHttpError(
			http.StatusBadRequest,
			"Format d'identifiant invalide",
			err,
			map[string]interface{}{"param": id},
		)
	}
	return id, nil
}
