package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hydrotrack/core/docs"
	httpHandlers "github.com/hydrotrack/core/internal/adapters/http"
	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/infrastructure/config"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// Server represents the HTTP server
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	logger  *logger.Logger
	store   ports.KeyValueStore
	metrics *metrics.Metrics
}

// New creates a new server instance around already wired services
func New(cfg *config.Config, svc *services.Services, validator *httpHandlers.Validator, store ports.KeyValueStore, m *metrics.Metrics, appLogger *logger.Logger) (*Server, error) {
	if svc == nil || store == nil {
		return nil, errors.New("server requires services and a store")
	}

	e := echo.New()

	// Set custom validator
	e.Validator = validator

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Initialize handlers
	handlers := &httpHandlers.Handlers{
		Setups:    httpHandlers.NewSetupHandler(svc.Garden, appLogger),
		Plants:    httpHandlers.NewPlantHandler(svc.Garden, svc.Projection, appLogger),
		Inventory: httpHandlers.NewInventoryHandler(svc.Inventory, appLogger),
		Advisor:   httpHandlers.NewAdvisorHandler(svc.Advisor, appLogger),
		Backup:    httpHandlers.NewBackupHandler(svc.Backup, appLogger),
	}

	server := &Server{
		echo:    e,
		config:  cfg,
		logger:  appLogger,
		store:   store,
		metrics: m,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup metrics
	if cfg.Metrics.Enabled && m != nil {
		server.setupMetrics()
	}

	// Setup routes
	server.setupRoutes(handlers)

	return server, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(h *httpHandlers.Handlers) {
	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	setups := v1.Group("/setups")
	setups.GET("", h.Setups.ListSetups)
	setups.POST("", h.Setups.CreateSetup)
	setups.GET("/:id", h.Setups.GetSetup)
	setups.POST("/:id/water-logs", h.Setups.AddWaterLog)

	plants := v1.Group("/plants")
	plants.GET("", h.Plants.ListPlants)
	plants.POST("", h.Plants.CreatePlant)
	plants.POST("/projection", h.Plants.Project)
	plants.GET("/:id", h.Plants.GetPlant)
	plants.GET("/:id/timeline", h.Plants.GetTimeline)
	plants.PUT("/:id/status", h.Plants.UpdateStatus)
	plants.PUT("/:id/milestones", h.Plants.RecordMilestone)
	plants.POST("/:id/harvests", h.Plants.AddHarvest)

	v1.GET("/equipment", h.Inventory.ListEquipment)
	v1.POST("/equipment", h.Inventory.CreateEquipment)
	v1.GET("/ingredients", h.Inventory.ListIngredients)
	v1.POST("/ingredients", h.Inventory.CreateIngredient)

	tasks := v1.Group("/tasks")
	tasks.GET("", h.Inventory.ListTasks)
	tasks.POST("", h.Inventory.CreateTask)
	tasks.POST("/:id/toggle", h.Inventory.ToggleTask)

	advisor := v1.Group("/advisor")
	advisor.POST("/diagnose", h.Advisor.Diagnose)
	advisor.POST("/guide", h.Advisor.Guide)
	advisor.GET("/tip", h.Advisor.Tip)

	v1.GET("/backup", h.Backup.Export)
	v1.POST("/backup", h.Backup.Upload)
}

// setupMetrics installs the request metrics middleware and endpoint
func (s *Server) setupMetrics() {
	s.echo.Use(s.metricsMiddleware())
	s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	if err := s.store.Ping(c.Request().Context()); err != nil {
		status = "error"
		checks["storage"] = map[string]interface{}{
			"status": "error",
			"driver": s.config.Storage.Driver,
			"error":  err.Error(),
		}
	} else {
		checks["storage"] = map[string]interface{}{
			"status": "ok",
			"driver": s.config.Storage.Driver,
		}
	}

	genai := "offline"
	if s.config.GenAI.APIKey != "" {
		genai = "configured"
	}
	checks["genai"] = map[string]interface{}{
		"status": genai,
		"model":  s.config.GenAI.Model,
	}
	checks["backup"] = map[string]interface{}{
		"enabled": s.config.Backup.Enabled(),
	}

	response := map[string]interface{}{
		"status":  status,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"checks":  checks,
		"version": s.config.App.Version,
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	if err := s.store.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "storage_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler handles HTTP errors
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  interface{}
		)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = map[string]interface{}{"message": he.Message}
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		} else {
			msg = map[string]string{"message": http.StatusText(code)}
		}

		if code == http.StatusInternalServerError {
			logger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		// Send response
		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, msg)
			}
			if err != nil {
				logger.Errorw("Error sending response", "error", err)
			}
		}
	}
}
