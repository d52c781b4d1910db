package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runIncidentRouter(g *echo.Group, ctrl *controllers.IncidentController) {
	g.GET("/incidents", ctrl.ListIncidents)
	g.GET("/incidents/:id", ctrl.FindIncident)
	g.POST("/incidents", ctrl.CreateIncident)
	g.PUT("/incidents/:id", ctrl.UpdateIncident)
	g.DELETE("/incidents/:id", ctrl.DeleteIncident)
}
