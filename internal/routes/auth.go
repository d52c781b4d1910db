package routes

import (
	"github.com/labstack/echo/v4"

	"parc-system/internal/controllers"
	"parc-system/pkg/middleware"
)

// Les routes d'authentification sont publiques sauf le profil et le
// changement de mot de passe.
func runAuthRouter(api *echo.Group, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	api.POST("/auth/register", ctrl.Register)
	api.POST("/auth/login", ctrl.Login)
	api.POST("/auth/refresh", ctrl.RefreshToken)
	api.POST("/auth/logout", ctrl.Logout)
	api.POST("/auth/forgot-password", ctrl.SendResetCode)
	api.POST("/auth/reset-password", ctrl.ResetPassword)

	api.POST("/auth/change-password", ctrl.ChangePassword, authMW.Auth)
	api.GET("/auth/profile", ctrl.GetProfile, authMW.Auth)
}
