package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/api/handler"
	"github.com/casetrack/case-management/internal/api/middleware"
	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/service"
	"github.com/casetrack/case-management/internal/infrastructure/db/postgres"
	"github.com/casetrack/case-management/internal/infrastructure/storage"
)

// Deps carries the process-wide resources the router wires together.
type Deps struct {
	Pool        *pgxpool.Pool
	Redis       *redis.Client
	Files       *storage.Store
	JWTSecret   string
	FrontendURL string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{deps.FrontendURL},
		AllowCredentials: true,
	}))
	// Slightly above the document cap so oversize uploads reach the
	// validation that reports them as a 400 instead of a blunt 413.
	e.Use(echomiddleware.BodyLimit("12M"))
	e.Use(echoprometheus.NewMiddleware("casetrack"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(deps.Pool)
	personRepo := postgres.NewPersonRepository(deps.Pool)
	documentRepo := postgres.NewDocumentRepository(deps.Pool)

	authService := service.NewAuthService(userRepo, deps.JWTSecret, 24*time.Hour, deps.Log)
	userService := service.NewUserService(userRepo, deps.Log)
	personService := service.NewPersonService(personRepo, documentRepo, deps.Files, deps.Log)
	statusService := service.NewStatusService(personRepo, deps.Log)
	documentService := service.NewDocumentService(documentRepo, personRepo, deps.Files, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	personHandler := handler.NewPersonHandler(personService)
	statusHandler := handler.NewStatusHandler(statusService)
	documentHandler := handler.NewDocumentHandler(documentService, deps.Files)

	authMW := middleware.Auth(deps.JWTSecret)
	adminMW := middleware.RBAC(domain.RoleAdmin)
	// Login/register run a tight window; the rest of the API a generous one.
	authLimit := middleware.RateLimit(deps.Redis, middleware.RateLimitConfig{
		Prefix: "auth",
		Window: 15 * time.Minute,
		Limit:  5,
	}, deps.Log)
	apiLimit := middleware.RateLimit(deps.Redis, middleware.RateLimitConfig{
		Prefix: "api",
		Window: 15 * time.Minute,
		Limit:  100,
	}, deps.Log)

	api := e.Group("/api")

	// --- Auth (no token required) ---
	api.POST("/auth/register", authHandler.Register, authLimit)
	api.POST("/auth/login", authHandler.Login, authLimit)

	// --- People ---
	people := api.Group("/people", authMW, apiLimit)
	people.GET("", personHandler.List)
	people.GET("/:id", personHandler.Get)
	people.POST("", personHandler.Create)
	people.PUT("/:id", personHandler.Update)
	people.DELETE("/:id", personHandler.Delete)

	// --- Status (admin-only) ---
	status := api.Group("/status", authMW, apiLimit)
	status.PUT("/:personId", statusHandler.Set, adminMW)

	// --- Documents ---
	documents := api.Group("/documents", authMW, apiLimit)
	documents.GET("/person/:personId", documentHandler.ListByPerson)
	documents.POST("/person/:personId", documentHandler.Upload)
	documents.DELETE("/:documentId", documentHandler.Delete)
	documents.GET("/:documentId/download", documentHandler.Download)
	documents.GET("/:documentId/content", documentHandler.Content)

	// --- Users (admin-only) ---
	users := api.Group("/users", authMW, adminMW, apiLimit)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id/role", userHandler.SetRole)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Pool, deps.Redis)

	api.GET("/health", healthHandler.Liveness)
	api.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
