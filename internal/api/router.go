package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/theyard/fanpass/internal/api/handler"
	"github.com/theyard/fanpass/internal/api/middleware"
	"github.com/theyard/fanpass/internal/core/ports"
)

// Dependencies carries everything the router needs, constructed in main.
type Dependencies struct {
	Logger zerolog.Logger

	Passes  ports.PassService
	CMS     ports.CMSService
	Auth    ports.AuthService
	Uploads ports.UploadService

	SessionSecret string
	SessionTTL    time.Duration

	// Redis is nil when running on the in-memory fallback store.
	Redis *redis.Client
	// UploadDir is served statically under /uploads.
	UploadDir string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("yard"))

	// --- Handlers ---
	passHandler := handler.NewPassHandler(deps.Passes)
	adminHandler := handler.NewAdminHandler(deps.Auth, deps.Passes, deps.SessionTTL)
	cmsHandler := handler.NewCMSHandler(deps.CMS)
	uploadHandler := handler.NewUploadHandler(deps.Uploads)

	// --- Public pass routes (anon-id cookie resolved per request) ---
	passes := e.Group("/api/passes", middleware.AnonID())
	passes.POST("", passHandler.Create)
	passes.GET("", passHandler.Get)
	passes.GET("/card.png", passHandler.Card)

	// --- Admin routes ---
	admin := e.Group("/api/admin")
	admin.POST("/login", adminHandler.Login)
	admin.DELETE("/login", adminHandler.Logout)

	guard := middleware.AdminAuth(deps.SessionSecret)
	admin.GET("/passes", adminHandler.ListPasses, guard)
	admin.GET("/cms", cmsHandler.Get, guard)
	admin.PUT("/cms", cmsHandler.Put, guard)
	admin.POST("/cms/reset", cmsHandler.Reset, guard)
	admin.POST("/upload", uploadHandler.Upload, guard)

	// --- Uploaded assets ---
	e.Static("/uploads", deps.UploadDir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
