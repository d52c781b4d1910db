package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runRechercheRouter(g *echo.Group, ctrl *controllers.RechercheController) {
	g.GET("/recherche", ctrl.Rechercher)
}
