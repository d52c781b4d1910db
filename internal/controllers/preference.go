package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
	logger            *zap.Logger
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface, logger *zap.Logger) *PreferenceController {
	return &PreferenceController{preferenceService: preferenceService, logger: logger}
}

func (c *PreferenceController) GetPreference(ctx echo.Context) error {
	res, err := c.preferenceService.GetPreference(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetPreference: échec de lecture des préférences", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Préférences récupérées", http.StatusOK)
}

func (c *PreferenceController) UpdatePreference(ctx echo.Context) error {
	var payload dto.UpdatePreferenceDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.preferenceService.UpdatePreference(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("UpdatePreference: échec de mise à jour des préférences", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Préférences mises à jour", http.StatusOK)
}
