package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"parc-system/internal/controllers"
	"parc-system/internal/repositories"
	"parc-system/internal/services"
	"parc-system/pkg/config"
	"parc-system/pkg/middleware"
	"parc-system/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- Répertoires ---
	materielRepo := repositories.NewMaterielRepository(dbConn)
	utilisateurRepo := repositories.NewUtilisateurRepository(dbConn)
	attributionRepo := repositories.NewAttributionRepository(dbConn)
	maintenanceRepo := repositories.NewMaintenanceRepository(dbConn)
	incidentRepo := repositories.NewIncidentRepository(dbConn)
	activiteRepo := repositories.NewActiviteRepository(dbConn)
	compteRepo := repositories.NewCompteRepository(dbConn)
	preferenceRepo := repositories.NewPreferenceRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)

	// --- Services ---
	activiteService := services.NewActiviteService(activiteRepo, logger)
	parcService := services.NewParcService(
		txManager, materielRepo, attributionRepo, maintenanceRepo,
		activiteService, cacheRepo, logger,
	)
	materielService := services.NewMaterielService(materielRepo, logger)
	attributionService := services.NewAttributionService(attributionRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo)
	utilisateurService := services.NewUtilisateurService(utilisateurRepo)
	incidentService := services.NewIncidentService(incidentRepo, activiteService)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, logger)
	alerteService := services.NewAlerteService(materielRepo, maintenanceRepo, preferenceRepo)
	importExportService := services.NewImportExportService(
		materielRepo, utilisateurRepo, attributionRepo, maintenanceRepo,
		incidentRepo, activiteService, logger,
	)
	rapportService := services.NewRapportService(materielRepo)
	rechercheService := services.NewRechercheService(
		materielService, utilisateurService, attributionService,
		maintenanceService, incidentService,
	)
	preferenceService := services.NewPreferenceService(preferenceRepo)
	authService := services.NewAuthService(compteRepo, cacheRepo, jwtSvc, cfg.Auth, logger)

	// --- Contrôleurs ---
	materielController := controllers.NewMaterielController(materielService, parcService, logger)
	attributionController := controllers.NewAttributionController(attributionService, parcService, logger)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService, parcService, logger)
	utilisateurController := controllers.NewUtilisateurController(utilisateurService, logger)
	incidentController := controllers.NewIncidentController(incidentService, logger)
	activiteController := controllers.NewActiviteController(activiteService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, alerteService, logger)
	importExportController := controllers.NewImportExportController(importExportService, logger)
	rapportController := controllers.NewRapportController(rapportService, logger)
	rechercheController := controllers.NewRechercheController(rechercheService, logger)
	preferenceController := controllers.NewPreferenceController(preferenceService, logger)
	authController := controllers.NewAuthController(authService, logger)

	// --- Routes ---
	runAuthRouter(api, authController, authMW)

	secureGroup := api.Group("", authMW.Auth)
	runMaterielRouter(secureGroup, materielController)
	runAttributionRouter(secureGroup, attributionController)
	runMaintenanceRouter(secureGroup, maintenanceController)
	runUtilisateurRouter(secureGroup, utilisateurController)
	runIncidentRouter(secureGroup, incidentController)
	runActiviteRouter(secureGroup, activiteController)
	runDashboardRouter(secureGroup, dashboardController)
	runImportExportRouter(secureGroup, importExportController)
	runRapportRouter(secureGroup, rapportController)
	runRechercheRouter(secureGroup, rechercheController)
	runPreferenceRouter(secureGroup, preferenceController)

	logger.Info("routes initialisées")
}
