package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	identityService "github.com/allisson/scenes/internal/identity/service"
	scenesHTTP "github.com/allisson/scenes/internal/scenes/http"
)

// ReadinessChecker reports whether the storage backend is reachable.
// A nil checker means the backend needs no connectivity probe.
type ReadinessChecker func(ctx context.Context) error

// RouterConfig contains the dependencies needed to build the API router.
type RouterConfig struct {
	SceneHandler      *scenesHTTP.SceneHandler
	Resolver          identityService.Resolver
	CORSEnabled       bool
	MetricsMiddleware gin.HandlerFunc
}

// Server represents the HTTP server for the scene sync API.
type Server struct {
	router    *gin.Engine
	server    *http.Server
	logger    *slog.Logger
	readiness ReadinessChecker
}

// NewServer creates a new HTTP server.
func NewServer(host string, port int, logger *slog.Logger, readiness ReadinessChecker) *Server {
	return &Server{
		logger:    logger,
		readiness: readiness,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with middleware and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method_not_allowed"})
	})

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	api := router.Group("/api")
	api.Use(scenesHTTP.AuthenticationMiddleware(cfg.Resolver, s.logger))
	api.GET("/scenes", cfg.SceneHandler.FetchHandler)
	api.PUT("/scenes", cfg.SceneHandler.SaveHandler)

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.readiness != nil {
		if err := s.readiness(c.Request.Context()); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"components": gin.H{"storage": "error"},
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
