package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"parc-system/internal/entities"
	"parc-system/internal/services"
	"parc-system/pkg/utils"
)

type RapportController struct {
	rapportService services.RapportServiceInterface
	logger         *zap.Logger
}

func NewRapportController(rapportService services.RapportServiceInterface, logger *zap.Logger) *RapportController {
	return &RapportController{rapportService: rapportService, logger: logger}
}

func (c *RapportController) GetInventaire(ctx echo.Context) error {
	data, err := c.rapportService.GetInventaire(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetInventaire: échec de génération du rapport", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.respondWithXLSX(ctx, data)
}

var inventaireHeaders = []string{
	"Nom", "Modèle", "N° de série", "Fournisseur", "Date d'achat",
	"Prix d'achat", "Fin de garantie", "Statut", "Description",
}

func materielToRow(m entities.Materiel) []interface{} {
	dateFmt := "02/01/2006"
	var garantieFin, prixAchat string
	if m.GarantieFin.Valid {
		garantieFin = m.GarantieFin.Time.Format(dateFmt)
	}
	if m.PrixAchat.Valid {
		prixAchat = fmt.Sprintf("%.2f", m.PrixAchat.Float64)
	}

	return []interface{}{
		m.Nom, m.Modele, m.NumeroSerie, m.Fournisseur.String, m.DateAchat.Format(dateFmt),
		prixAchat, garantieFin, m.Statut, m.Description.String,
	}
}

func (c *RapportController) respondWithXLSX(ctx echo.Context, data []entities.Materiel) error {
	f := excelize.NewFile()
	sheet := "Inventaire"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inventaireHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, m := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := materielToRow(m)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "C", 25)
	f.SetColWidth(sheet, "D", "D", 20)
	f.SetColWidth(sheet, "E", "H", 15)
	f.SetColWidth(sheet, "I", "I", 45)

	fileName := fmt.Sprintf("inventaire_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
