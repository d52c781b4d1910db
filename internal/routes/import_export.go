package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runImportExportRouter(g *echo.Group, ctrl *controllers.ImportExportController) {
	g.POST("/import/materiels", ctrl.ImportMateriels)
	g.POST("/import/utilisateurs", ctrl.ImportUtilisateurs)
	g.GET("/import/materiels/template", ctrl.TemplateMateriels)
	g.GET("/import/utilisateurs/template", ctrl.TemplateUtilisateurs)
	g.GET("/export/:table", ctrl.ExportTable)
}
