package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hydrotrack/core/internal/adapters/gemini"
	httpHandlers "github.com/hydrotrack/core/internal/adapters/http"
	"github.com/hydrotrack/core/internal/adapters/kvstore"
	"github.com/hydrotrack/core/internal/adapters/objectstore"
	"github.com/hydrotrack/core/internal/adapters/repository"
	"github.com/hydrotrack/core/internal/application/services"
	"github.com/hydrotrack/core/internal/infrastructure/config"
	"github.com/hydrotrack/core/internal/infrastructure/logger"
	"github.com/hydrotrack/core/internal/infrastructure/metrics"
	"github.com/hydrotrack/core/internal/ports"
)

// app is the wired application shared by every command
type app struct {
	cfg       *config.Config
	logger    *logger.Logger
	metrics   *metrics.Metrics
	store     ports.KeyValueStore
	validator *httpHandlers.Validator
	services  *services.Services
}

// loadConfig is swapped in tests.
var loadConfig = config.Load

// bootstrap loads configuration and wires storage, collaborators and services.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		appLogger.Close()
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	generator, err := gemini.NewOrOffline(ctx, cfg.GenAI)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			appLogger.Warnw("GenAI API key not set, advisor answers will use offline fallbacks")
		} else {
			appLogger.Warnw("GenAI client unavailable, using offline fallbacks", "error", err)
		}
	} else if c, ok := generator.(*gemini.Client); ok {
		appLogger.Infow("GenAI client ready", "model", c.Model())
	}

	var objects ports.ObjectStore
	if cfg.Backup.Enabled() {
		s3Store, err := objectstore.NewS3Store(ctx, cfg.Backup)
		if err != nil {
			store.Close()
			appLogger.Close()
			return nil, fmt.Errorf("failed to initialize backup storage: %w", err)
		}
		objects = s3Store
	}

	m := metrics.New()
	repos := repository.New(store, appLogger.WithComponent("repository"), m)
	validator := httpHandlers.NewValidator()

	svc := services.New(services.Deps{
		Setups:      repos.Setups,
		Plants:      repos.Plants,
		Equipment:   repos.Equipment,
		Ingredients: repos.Ingredients,
		Tasks:       repos.Tasks,
		Generator:   generator,
		Objects:     objects,
		Validate:    validator.Engine(),
		Logger:      appLogger,
		Metrics:     m,
	})

	return &app{
		cfg:       cfg,
		logger:    appLogger,
		metrics:   m,
		store:     store,
		validator: validator,
		services:  svc,
	}, nil
}

// Close releases storage and flushes logs
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warnw("Failed to close storage", "error", err)
	}
	_ = a.logger.Close()
}
