package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/workshoppro/joborder-system/docs"
	"github.com/workshoppro/joborder-system/internal/api/handler"
	"github.com/workshoppro/joborder-system/internal/api/middleware"
	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
	"github.com/workshoppro/joborder-system/internal/core/service"
	mongodb "github.com/workshoppro/joborder-system/internal/infrastructure/db/mongo"
	redisdb "github.com/workshoppro/joborder-system/internal/infrastructure/db/redis"
	"github.com/workshoppro/joborder-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	audit ports.AuditDispatcher,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("joborder"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	sessions := service.NewSessionService(sessionStore, users, log)
	verifier := service.NewTokenVerifier(cfg.JWTSecret)
	recorder := service.NewAuditRecorder(audit)
	authService := service.NewAuthService(users, sessions, verifier, recorder, log)

	authHandler := handler.NewAuthHandler(authService, cfg.SecureCookies)
	authMiddleware := middleware.Auth(verifier, sessions)

	// --- Public routes ---
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Protected routes ---
	authed := e.Group("/v1", authMiddleware)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.POST("/auth/logout/all", authHandler.LogoutAll)
	authed.GET("/auth/me", authHandler.Me)

	// Session revocation for other users is an administrative operation:
	// owners and managers only, and the set is declared here, not inferred.
	admin := authed.Group("/admin", middleware.RequireRole(domain.RoleOwner, domain.RoleManager))
	admin.DELETE("/users/:id/sessions", authHandler.RevokeUserSessions)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
