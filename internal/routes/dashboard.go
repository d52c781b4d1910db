package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard/statistiques", ctrl.GetStatistiques)
	g.GET("/dashboard/alertes", ctrl.GetAlertes)
}
