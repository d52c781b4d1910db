package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

const defaultActiviteLimit = 50

type ActiviteController struct {
	activiteService services.ActiviteServiceInterface
	logger          *zap.Logger
}

func NewActiviteController(activiteService services.ActiviteServiceInterface, logger *zap.Logger) *ActiviteController {
	return &ActiviteController{activiteService: activiteService, logger: logger}
}

func (c *ActiviteController) ListActivites(ctx echo.Context) error {
	limit := defaultActiviteLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	res, err := c.activiteService.ListActivites(ctx.Request().Context(), limit)
	if err != nil {
		c.logger.Error("ListActivites: échec de lecture du journal", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Journal d'activités récupéré", http.StatusOK)
}

func (c *ActiviteController) PurgeActivites(ctx echo.Context) error {
	if err := c.activiteService.PurgeActivites(ctx.Request().Context()); err != nil {
		c.logger.Error("PurgeActivites: échec de purge du journal", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Journal d'activités vidé", http.StatusOK)
}
