package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runActiviteRouter(g *echo.Group, ctrl *controllers.ActiviteController) {
	g.GET("/activites", ctrl.ListActivites)
	g.DELETE("/activites", ctrl.PurgeActivites)
}
