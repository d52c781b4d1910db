package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runAttributionRouter(g *echo.Group, ctrl *controllers.AttributionController) {
	g.GET("/attributions", ctrl.ListAttributions)
	g.GET("/attributions/:id", ctrl.FindAttribution)
	g.POST("/attributions", ctrl.CreateAttribution)
	g.PUT("/attributions/:id", ctrl.UpdateAttribution)
	g.DELETE("/attributions/:id", ctrl.DeleteAttribution)
}
