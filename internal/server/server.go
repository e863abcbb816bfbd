// Package server contains the HTTP handlers and wiring for the application's API.
package server

import (
	"context"
	"io"

	"lockbox/internal/config"
	"lockbox/internal/middleware"
	"lockbox/internal/service"
	"lockbox/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          store.Store
	promMiddleware *fiberprometheus.FiberPrometheus
	accounts       *service.AccountService
	sessions       *service.SessionService
	profiles       *service.ProfileService
}

// NewServer creates a new server instance, opening the store selected by the
// configuration.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithStore(cfg, st), nil
}

// NewServerWithStore creates a Server over an already-constructed store.
// Use this in tests.
func NewServerWithStore(cfg *config.Config, st store.Store) *Server {
	accounts := service.NewAccountService(st)
	sessions := service.NewSessionService(st)

	return &Server{
		config:   cfg,
		store:    st,
		accounts: accounts,
		sessions: sessions,
		profiles: service.NewProfileService(st, accounts, sessions),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Propagate request ID into the request context for the logger
	app.Use(middleware.ContextMiddleware())

	// Structured request logging
	app.Use(middleware.StructuredLogger())

	// Prometheus metrics. Initialized here rather than in the constructor so
	// that building a Server without the middleware stack (as tests do) never
	// touches the global metrics registry.
	if s.promMiddleware == nil {
		s.promMiddleware = middleware.InitMetrics("lockbox-api")
	}
	app.Use(middleware.MetricsMiddleware(s.promMiddleware, app))

	app.Use(cors.New(cors.Config{
		AllowOrigins: s.config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// SetupRoutes registers all API routes on the Fiber app
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)
	// Logout stays outside the session gate: terminating is valid even
	// when no session exists.
	auth.Post("/logout", s.Logout)

	profile := api.Group("/profile", middleware.SessionRequired(s.sessions))
	profile.Get("/", s.Profile)
	profile.Put("/image", s.UploadImage)
	profile.Delete("/image", s.RemoveImage)
	profile.Get("/address", s.GetAddress)
	profile.Put("/address", s.PutAddress)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(_ context.Context) error {
	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
