package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runMaintenanceRouter(g *echo.Group, ctrl *controllers.MaintenanceController) {
	g.GET("/maintenances", ctrl.ListMaintenances)
	g.GET("/maintenances/:id", ctrl.FindMaintenance)
	g.POST("/maintenances", ctrl.CreateMaintenance)
	g.PUT("/maintenances/:id", ctrl.UpdateMaintenance)
	g.DELETE("/maintenances/:id", ctrl.DeleteMaintenance)
}
