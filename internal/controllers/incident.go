package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

type IncidentController struct {
	incidentService services.IncidentServiceInterface
	logger          *zap.Logger
}

func NewIncidentController(incidentService services.IncidentServiceInterface, logger *zap.Logger) *IncidentController {
	return &IncidentController{incidentService: incidentService, logger: logger}
}

func (c *IncidentController) ListIncidents(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.incidentService.ListIncidents(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("ListIncidents: échec de lecture de la liste", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Liste des incidents récupérée", http.StatusOK, total)
}

func (c *IncidentController) FindIncident(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.incidentService.FindIncident(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindIncident: échec de lecture", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Incident trouvé", http.StatusOK)
}

func (c *IncidentController) CreateIncident(ctx echo.Context) error {
	var payload dto.CreateIncidentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.incidentService.CreateIncident(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateIncident: échec de création", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Incident signalé", http.StatusCreated)
}

func (c *IncidentController) UpdateIncident(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateIncidentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.incidentService.UpdateIncident(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateIncident: échec de mise à jour", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Incident mis à jour", http.StatusOK)
}

func (c *IncidentController) DeleteIncident(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.incidentService.DeleteIncident(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteIncident: échec de suppression", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Incident supprimé", http.StatusOK)
}
