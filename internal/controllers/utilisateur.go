package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/dto"
	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

type UtilisateurController struct {
	utilisateurService services.UtilisateurServiceInterface
	logger             *zap.Logger
}

func NewUtilisateurController(utilisateurService services.UtilisateurServiceInterface, logger *zap.Logger) *UtilisateurController {
	return &UtilisateurController{utilisateurService: utilisateurService, logger: logger}
}

func (c *UtilisateurController) ListUtilisateurs(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.utilisateurService.ListUtilisateurs(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("ListUtilisateurs: échec de lecture de la liste", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Liste des utilisateurs récupérée", http.StatusOK, total)
}

func (c *UtilisateurController) FindUtilisateur(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.utilisateurService.FindUtilisateur(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindUtilisateur: échec de lecture", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Utilisateur trouvé", http.StatusOK)
}

func (c *UtilisateurController) CreateUtilisateur(ctx echo.Context) error {
	var payload dto.CreateUtilisateurDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.utilisateurService.CreateUtilisateur(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateUtilisateur: échec de création", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Utilisateur créé", http.StatusCreated)
}

func (c *UtilisateurController) UpdateUtilisateur(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateUtilisateurDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.utilisateurService.UpdateUtilisateur(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateUtilisateur: échec de mise à jour", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Utilisateur mis à jour", http.StatusOK)
}

func (c *UtilisateurController) DeleteUtilisateur(ctx echo.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.utilisateurService.DeleteUtilisateur(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteUtilisateur: échec de suppression", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "Utilisateur supprimé", http.StatusOK)
}
