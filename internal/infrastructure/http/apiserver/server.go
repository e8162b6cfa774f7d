// Package apiserver provides the JSON API HTTP server implementation
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/chefbyte/v1/internal/infrastructure/config"
	"github.com/chefbyte/v1/internal/infrastructure/http/handlers"
	"github.com/chefbyte/v1/internal/infrastructure/http/middleware"
	"github.com/chefbyte/v1/internal/ports/inbound"
	"github.com/chefbyte/v1/pkg/healthcheck"
)

// APIServer represents the JSON API HTTP server
type APIServer struct {
	config         *config.Config
	logger         *zap.Logger
	server         *http.Server
	router         *chi.Mux
	plannerService inbound.PlannerService
	pantryService  inbound.PantryService
	health         *healthcheck.HealthCheck
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	plannerService inbound.PlannerService,
	pantryService inbound.PantryService,
	health *healthcheck.HealthCheck,
) *APIServer {
	server := &APIServer{
		config:         cfg,
		logger:         log,
		plannerService: plannerService,
		pantryService:  pantryService,
		health:         health,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        server.router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONOnly())

	h := handlers.NewAPIHandlers(s.plannerService, s.pantryService, s.logger)
	pantryH := handlers.NewPantryAPIHandlers(s.pantryService, s.logger)

	// Health check endpoints
	r.Get("/health", s.health.Handler())
	r.Get("/health/live", s.health.LivenessHandler())
	r.Get("/health/ready", s.health.ReadinessHandler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		r.Post("/recipes/search", h.SearchRecipes)
		r.Post("/mealplans", h.PlanMeals)

		r.Route("/pantry/{session}", func(r chi.Router) {
			r.Get("/", pantryH.ListItems)
			r.Put("/", pantryH.ReplaceItems)
			r.Post("/items", pantryH.AddItem)
			r.Delete("/items/{name}", pantryH.RemoveItem)
		})
	})

	return r
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Router returns the configured router, useful in tests
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
