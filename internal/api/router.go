package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/orangeplan/user-management/docs"
	"github.com/orangeplan/user-management/internal/api/handler"
	"github.com/orangeplan/user-management/internal/api/middleware"
	"github.com/orangeplan/user-management/internal/core/domain"
	"github.com/orangeplan/user-management/internal/core/service"
	mongodb "github.com/orangeplan/user-management/internal/infrastructure/db/mongo"
	redisdb "github.com/orangeplan/user-management/internal/infrastructure/db/redis"
	"github.com/orangeplan/user-management/internal/infrastructure/http/handlers"
)

// Options carries the router's tunables.
type Options struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	planRepo := mongodb.NewPlanRepository(db)
	audit := redisdb.NewAuditTrail(rdb, log)
	codec := service.NewTokenCodec(opts.JWTSecret)
	authService := service.NewAuthService(userRepo, codec, opts.AccessTTL, opts.RefreshTTL, audit, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	planHandler := handler.NewPlanHandler(planRepo)
	auditHandler := handler.NewAuditHandler(audit)

	authenticated := middleware.Auth(codec, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyRole := middleware.RBAC(domain.RoleAny)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/register", authHandler.Register, authenticated, adminOnly)
	auth.GET("/me", authHandler.Me, authenticated, anyRole)

	// --- User directory (admin only) ---
	users := e.Group("/users", authenticated, adminOnly)
	users.GET("/", userHandler.List)
	users.GET("/:user_id", userHandler.Get)
	users.PATCH("/:user_id", userHandler.Update)
	users.DELETE("/:user_id", userHandler.Delete)

	// --- Audit trail (admin only) ---
	e.GET("/audit", auditHandler.Recent, authenticated, adminOnly)

	// --- Reference catalog (admin only) ---
	e.GET("/profiles", planHandler.ListProfiles, authenticated, adminOnly)
	e.GET("/profiles/:name/plans", planHandler.PlansForProfile, authenticated, adminOnly)
	e.GET("/plans", planHandler.ListPlans, authenticated, adminOnly)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
