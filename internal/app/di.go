// Package app provides the dependency injection container for assembling
// application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/scenes/internal/config"
	cryptoService "github.com/allisson/scenes/internal/crypto/service"
	"github.com/allisson/scenes/internal/database"
	"github.com/allisson/scenes/internal/http"
	identityService "github.com/allisson/scenes/internal/identity/service"
	"github.com/allisson/scenes/internal/metrics"
	scenesHTTP "github.com/allisson/scenes/internal/scenes/http"
	"github.com/allisson/scenes/internal/scenes/repository"
	scenesUseCase "github.com/allisson/scenes/internal/scenes/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	bucketStore     *repository.BucketRecordStore
	metricsProvider *metrics.Provider

	// Services
	resolver identityService.Resolver

	// Repositories
	recordStore scenesUseCase.RecordStore

	// Use cases
	sceneUseCase scenesUseCase.SceneUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	metricsProviderInit sync.Once
	resolverInit        sync.Once
	recordStoreInit     sync.Once
	sceneUseCaseInit    sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection for SQL storage drivers.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// MetricsProvider returns the metrics provider instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// Resolver returns the identity resolver instance.
func (c *Container) Resolver() identityService.Resolver {
	c.resolverInit.Do(func() {
		c.resolver = identityService.NewProfileResolver(
			c.config.IdentityProviderURL,
			c.config.IdentityProviderTimeout,
			c.Logger(),
		)
	})
	return c.resolver
}

// RecordStore returns the scene record store selected by the storage driver.
func (c *Container) RecordStore() (scenesUseCase.RecordStore, error) {
	c.recordStoreInit.Do(func() {
		store, err := c.initRecordStore()
		if err != nil {
			c.initErrors["recordStore"] = err
			return
		}
		c.recordStore = store
	})
	if storedErr, exists := c.initErrors["recordStore"]; exists {
		return nil, storedErr
	}
	return c.recordStore, nil
}

// SceneUseCase returns the scene use case instance.
func (c *Container) SceneUseCase() (scenesUseCase.SceneUseCase, error) {
	c.sceneUseCaseInit.Do(func() {
		useCase, err := c.initSceneUseCase()
		if err != nil {
			c.initErrors["sceneUseCase"] = err
			return
		}
		c.sceneUseCase = useCase
	})
	if storedErr, exists := c.initErrors["sceneUseCase"]; exists {
		return nil, storedErr
	}
	return c.sceneUseCase, nil
}

// HTTPServer returns the HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server instance.
// Returns nil without error when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.bucketStore != nil {
		if err := c.bucketStore.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("bucket close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.StorageDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initRecordStore creates the record store selected by the storage driver.
func (c *Container) initRecordStore() (scenesUseCase.RecordStore, error) {
	switch c.config.StorageDriver {
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, err
		}
		return repository.NewPostgreSQLRecordStore(db), nil
	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, err
		}
		return repository.NewMySQLRecordStore(db), nil
	case "bucket":
		store, err := repository.NewBucketRecordStore(context.Background(), c.config.BucketURL)
		if err != nil {
			return nil, err
		}
		c.bucketStore = store
		return store, nil
	case "memory":
		return repository.NewMemoryRecordStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", c.config.StorageDriver)
	}
}

// initSceneUseCase creates the scene use case with all its dependencies.
func (c *Container) initSceneUseCase() (scenesUseCase.SceneUseCase, error) {
	store, err := c.RecordStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get record store for scene use case: %w", err)
	}

	useCase := scenesUseCase.NewSceneUseCase(store, cryptoService.NewSealer(), c.Logger())

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for scene use case: %w", err)
	}
	if provider != nil {
		businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return nil, fmt.Errorf("failed to create business metrics: %w", err)
		}
		useCase = scenesUseCase.NewSceneUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	useCase, err := c.SceneUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get scene use case for http server: %w", err)
	}

	routerConfig := http.RouterConfig{
		SceneHandler: scenesHTTP.NewSceneHandler(useCase, logger),
		Resolver:     c.Resolver(),
		CORSEnabled:  c.config.CORSEnabled,
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}
	if provider != nil {
		routerConfig.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	server := http.NewServer(
		c.config.ServerHost,
		c.config.ServerPort,
		logger,
		c.readinessChecker(),
	)
	server.SetupRouter(routerConfig)

	return server, nil
}

// readinessChecker builds the storage probe for the readiness endpoint.
// SQL backends are probed with a ping; other backends have no cheap
// connectivity check and report ready unconditionally.
func (c *Container) readinessChecker() http.ReadinessChecker {
	switch c.config.StorageDriver {
	case "postgres", "mysql":
		return func(ctx context.Context) error {
			db, err := c.DB()
			if err != nil {
				return err
			}
			return db.PingContext(ctx)
		}
	default:
		return nil
	}
}
