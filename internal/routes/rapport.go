package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runRapportRouter(g *echo.Group, ctrl *controllers.RapportController) {
	g.GET("/rapports/inventaire", ctrl.GetInventaire)
}
