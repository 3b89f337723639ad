package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"thinksync/app/config"
	"thinksync/app/port"
	"thinksync/app/rest/handlers"
	custommw "thinksync/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	Config         *config.Config
	UserUsecase    port.UserUsecase
	SessionUsecase port.SessionUsecase
	AdminUsecase   port.AdminUsecase
	DB             handlers.DependencyChecker
	Kratos         handlers.DependencyChecker
}

// NewRouter creates and configures the Echo router
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	authHandler := handlers.NewAuthHandler(cfg.UserUsecase, cfg.Logger)
	sessionHandler := handlers.NewSessionHandler(cfg.SessionUsecase, cfg.Logger)
	adminHandler := handlers.NewAdminHandler(cfg.AdminUsecase, cfg.Config, cfg.Logger)
	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Kratos, cfg.Logger)

	authMiddleware := custommw.NewAuthMiddleware(cfg.UserUsecase, cfg.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	api := e.Group("/api")

	// Public
	api.GET("/health", healthHandler.HealthCheck)
	api.GET("/health/live", healthHandler.LivenessCheck)
	api.GET("/health/ready", healthHandler.ReadinessCheck)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/therapy/demo", sessionHandler.Demo)
	api.POST("/admin/bootstrap", adminHandler.Bootstrap)

	// Authenticated clinician surface
	therapy := api.Group("/therapy", authMiddleware.RequireAuth())
	therapy.POST("/sessions", sessionHandler.Create)
	therapy.GET("/sessions", sessionHandler.List)
	therapy.PUT("/sessions/:sessionId", sessionHandler.Update)

	// Admin surface
	adminGroup := api.Group("/admin", authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.POST("/users/:userId/approve", adminHandler.ApproveUser)
	adminGroup.GET("/stats", adminHandler.Stats)

	return e
}
