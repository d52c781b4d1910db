package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runMaterielRouter(g *echo.Group, ctrl *controllers.MaterielController) {
	g.GET("/materiels", ctrl.ListMateriels)
	g.GET("/materiels/:id", ctrl.FindMateriel)
	g.POST("/materiels", ctrl.CreateMateriel)
	g.PUT("/materiels/:id", ctrl.UpdateMateriel)
	g.DELETE("/materiels/:id", ctrl.DeleteMateriel)
}
