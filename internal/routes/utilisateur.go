package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
)

func runUtilisateurRouter(g *echo.Group, ctrl *controllers.UtilisateurController) {
	g.GET("/utilisateurs", ctrl.ListUtilisateurs)
	g.GET("/utilisateurs/:id", ctrl.FindUtilisateur)
	g.POST("/utilisateurs", ctrl.CreateUtilisateur)
	g.PUT("/utilisateurs/:id", ctrl.UpdateUtilisateur)
	g.DELETE("/utilisateurs/:id", ctrl.DeleteUtilisateur)
}
