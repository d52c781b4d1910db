package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

type MaterielController struct {
	materielService services.MaterielServiceInterface
	parcService     services.ParcServiceInterface
	logger          *zap.Logger
}

func NewMaterielController(
	materielService services.MaterielServiceInterface,
	parcService services.ParcServiceInterface,
	logger *zap.Logger,
) *MaterielController {
	return &MaterielController{
		materielService: materielService,
		parcService:     parcService,
		logger:          logger,
	}
}

func (c *MaterielController) ListMateriels(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.materielService.ListMateriels(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("ListMateriels: échec de lecture de la liste", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Liste du matériel récupérée", http.StatusOK, total)
}

func (c *MaterielController) FindMateriel(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.materielService.FindMateriel(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindMateriel: échec de lecture", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Matériel trouvé", http.StatusOK)
}

func (c *MaterielController) CreateMateriel(ctx echo.Context) error {
	var payload dto.CreateMaterielDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.parcService.CreateMateriel(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateMateriel: échec de création", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Matériel créé", http.StatusCreated)
}

func (c *MaterielController) UpdateMateriel(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMaterielDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.parcService.UpdateMateriel(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateMateriel: échec de mise à jour", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Matériel mis à jour", http.StatusOK)
}

func (c *MaterielController) DeleteMateriel(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.parcService.DeleteMateriel(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteMateriel: échec de suppression", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Matériel supprimé", http.StatusOK)
}
