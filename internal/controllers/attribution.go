package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

type AttributionController struct {
	attributionService services.AttributionServiceInterface
	parcService        services.ParcServiceInterface
	logger             *zap.Logger
}

func NewAttributionController(
	attributionService services.AttributionServiceInterface,
	parcService services.ParcServiceInterface,
	logger *zap.Logger,
) *AttributionController {
	return &AttributionController{
		attributionService: attributionService,
		parcService:        parcService,
		logger:             logger,
	}
}

func (c *AttributionController) ListAttributions(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.attributionService.ListAttributions(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("ListAttributions: échec de lecture de la liste", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Liste des attributions récupérée", http.StatusOK, total)
}

func (c *AttributionController) FindAttribution(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.attributionService.FindAttribution(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindAttribution: échec de lecture", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Attribution trouvée", http.StatusOK)
}

func (c *AttributionController) CreateAttribution(ctx echo.Context) error {
	var payload dto.CreateAttributionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.parcService.CreateAttribution(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateAttribution: échec de création", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Matériel attribué", http.StatusCreated)
}

func (c *AttributionController) UpdateAttribution(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateAttributionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.parcService.UpdateAttribution(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateAttribution: échec de mise à jour", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Attribution mise à jour", http.StatusOK)
}

func (c *AttributionController) DeleteAttribution(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.parcService.DeleteAttribution(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteAttribution: échec de suppression", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Attribution supprimée", http.StatusOK)
}
