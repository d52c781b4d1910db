package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	alerteService    services.AlerteServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	alerteService services.AlerteServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		alerteService:    alerteService,
		logger:           logger,
	}
}

func (c *DashboardController) GetStatistiques(ctx echo.Context) error {
	res, err := c.dashboardService.GetStatistiques(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetStatistiques: échec de calcul des statistiques", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Statistiques du parc calculées", http.StatusOK)
}

func (c *DashboardController) GetAlertes(ctx echo.Context) error {
	res, err := c.alerteService.GetAlertes(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetAlertes: échec de calcul des alertes", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Alertes du parc calculées", http.StatusOK)
}
