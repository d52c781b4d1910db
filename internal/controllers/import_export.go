package controllers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/services"
	apperrors "parc-system/pkg/errors"
	"parc-system/pkg/utils"
)

type ImportExportController struct {
	importExportService services.ImportExportServiceInterface
	logger              *zap.Logger
}

func NewImportExportController(importExportService services.ImportExportServiceInterface, logger *zap.Logger) *ImportExportController {
	return &ImportExportController{importExportService: importExportService, logger: logger}
}

func (c *ImportExportController) ImportMateriels(ctx echo.Context) error {
	file, err := c.openUpload(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	rapport, err := c.importExportService.ImportMaterielsCSV(ctx.Request().Context(), file)
	if err != nil {
		c.logger.Error("ImportMateriels: échec d'import CSV", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, rapport, "Import du matériel terminé", http.StatusOK)
}

func (c *ImportExportController) ImportUtilisateurs(ctx echo.Context) error {
	file, err := c.openUpload(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer file.Close()

	rapport, err := c.importExportService.ImportUtilisateursCSV(ctx.Request().Context(), file)
	if err != nil {
		c.logger.Error("ImportUtilisateurs: échec d'import CSV", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, rapport, "Import des utilisateurs terminé", http.StatusOK)
}

func (c *ImportExportController) ExportTable(ctx echo.Context) error {
	table := ctx.Param("table")

	// L'export est écrit en mémoire: en cas d'erreur en cours de route, la
	// réponse JSON d'erreur reste possible.
	var buf bytes.Buffer
	filename, err := c.importExportService.ExportCSV(ctx.Request().Context(), table, &buf)
	if err != nil {
		c.logger.Error("ExportTable: échec d'export CSV", zap.String("table", table), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (c *ImportExportController) TemplateMateriels(ctx echo.Context) error {
	filename, contenu := c.importExportService.TemplateMaterielsCSV()
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", contenu)
}

func (c *ImportExportController) TemplateUtilisateurs(ctx echo.Context) error {
	filename, contenu := c.importExportService.TemplateUtilisateursCSV()
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", contenu)
}

func (c *ImportExportController) openUpload(ctx echo.Context) (io.ReadCloser, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, apperrors.NewHttpError(
			http.StatusBadRequest,
			"Fichier CSV manquant: envoyez-le dans le champ 'file'",
			err,
			nil,
		)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Fichier CSV illisible", err, nil)
	}
	return file, nil
}
