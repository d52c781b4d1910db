package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runPreferenceRouter(g *echo.Group, ctrl *controllers.PreferenceController) {
	g.GET("/preferences", ctrl.GetPreference)
	g.PUT("/preferences", ctrl.UpdatePreference)
}
