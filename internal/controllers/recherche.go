package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/services"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/utils"
)

type RechercheController struct {
	rechercheService services.RechercheServiceInterface
	logger           *zap.Logger
}

func NewRechercheController(rechercheService services.RechercheServiceInterface, logger *zap.Logger) *RechercheController {
	return &RechercheController{rechercheService: rechercheService, logger: logger}
}

func (c *RechercheController) Rechercher(ctx echo.Context) error {
	terme := strings.TrimSpace(ctx.QueryParam("q"))
	if terme == "" {
		err := apperrors.NewHttpError(http.StatusBadRequest, "Le paramètre de recherche 'q' est requis", nil, nil)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	famille := strings.TrimSpace(ctx.QueryParam("type"))

	res, err := c.rechercheService.Rechercher(ctx.Request().Context(), terme, famille)
	if err != nil {
		c.logger.Error("Rechercher: échec de la recherche globale", zap.String("terme", terme), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Recherche effectuée", http.StatusOK)
}
