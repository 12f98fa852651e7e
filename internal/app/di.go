// Package app wires the application components. Components are built lazily on first
// access and cached for the life of the container.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	accountHTTP "github.com/linguahub/linguahub/internal/account/http"
	accountUseCase "github.com/linguahub/linguahub/internal/account/usecase"
	authHTTP "github.com/linguahub/linguahub/internal/auth/http"
	authService "github.com/linguahub/linguahub/internal/auth/service"
	authUseCase "github.com/linguahub/linguahub/internal/auth/usecase"
	"github.com/linguahub/linguahub/internal/config"
	"github.com/linguahub/linguahub/internal/database"
	"github.com/linguahub/linguahub/internal/http"
	"github.com/linguahub/linguahub/internal/metrics"
)

// DriverMemory keeps accounts in process memory. Intended for development and tests.
const DriverMemory = "memory"

// Container holds all application dependencies.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Repositories
	accountRepository accountUseCase.AccountRepository

	// Services
	passwordService authService.PasswordService
	kmsService      authService.KMSService
	tokenCodec      authService.TokenCodec

	// Use cases
	gate           authUseCase.Gate
	loginUseCase   authUseCase.LoginUseCase
	accountUseCase accountUseCase.AccountUseCase

	// Handlers
	authHandler    *authHTTP.AuthHandler
	accountHandler *accountHTTP.AccountHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                    sync.Mutex
	loggerInit            sync.Once
	dbInit                sync.Once
	txManagerInit         sync.Once
	metricsProviderInit   sync.Once
	businessMetricsInit   sync.Once
	accountRepositoryInit sync.Once
	passwordServiceInit   sync.Once
	kmsServiceInit        sync.Once
	tokenCodecInit        sync.Once
	gateInit              sync.Once
	loginUseCaseInit      sync.Once
	accountUseCaseInit    sync.Once
	authHandlerInit       sync.Once
	accountHandlerInit    sync.Once
	httpServerInit        sync.Once
	metricsServerInit     sync.Once
	initErrors            map[string]error
}

// NewContainer creates a container for cfg. cfg is expected to be validated.
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

// Logger returns the JSON logger configured with LOG_LEVEL.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database pool. It fails for the memory driver, which has none.
func (c *Container) DB(ctx context.Context) (*sql.DB, error) {
	c.dbInit.Do(func() {
		c.db, c.initErrors["db"] = c.initDB(ctx)
	})
	if err := c.initErrors["db"]; err != nil {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager. The memory driver gets a no-op manager.
func (c *Container) TxManager(ctx context.Context) (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		c.txManager, c.initErrors["txManager"] = c.initTxManager(ctx)
	})
	if err := c.initErrors["txManager"]; err != nil {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus backed provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, c.initErrors["metricsProvider"] = metrics.NewProvider(c.config.MetricsNamespace)
	})
	if err := c.initErrors["metricsProvider"]; err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the use case recorder, a no-op one when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, c.initErrors["businessMetrics"] = c.initBusinessMetrics()
	})
	if err := c.initErrors["businessMetrics"]; err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API server with its router mounted. ctx bounds background work
// started by the router, such as rate limiter cleanup.
func (c *Container) HTTPServer(ctx context.Context) (*http.Server, error) {
	c.httpServerInit.Do(func() {
		c.httpServer, c.initErrors["httpServer"] = c.initHTTPServer(ctx)
	})
	if err := c.initErrors["httpServer"]; err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the /metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		c.metricsServer, c.initErrors["metricsServer"] = c.initMetricsServer()
	})
	if err := c.initErrors["metricsServer"]; err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown stops the servers and releases the database pool and meter provider. Calling
// it again is a no-op.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
		c.httpServer = nil
	}
	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
		c.metricsServer = nil
	}
	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
		c.metricsProvider = nil
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
		c.db = nil
	}

	return errors.Join(errs...)
}

func (c *Container) initLogger() *slog.Logger {
	var level slog.Level
	switch c.config.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func (c *Container) initDB(ctx context.Context) (*sql.DB, error) {
	if c.config.DBDriver == DriverMemory {
		return nil, errors.New("memory driver has no database connection")
	}

	db, err := database.Connect(ctx, database.Config{
		Driver:             c.config.DBDriver,
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

func (c *Container) initTxManager(ctx context.Context) (database.TxManager, error) {
	if c.config.DBDriver == DriverMemory {
		return database.NewNoopTxManager(), nil
	}

	db, err := c.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}
	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// memoryHealth reports the in-process store as always reachable.
type memoryHealth struct{}

func (memoryHealth) PingContext(context.Context) error { return nil }

func (c *Container) initHTTPServer(ctx context.Context) (*http.Server, error) {
	var health http.HealthChecker = memoryHealth{}
	if c.config.DBDriver != DriverMemory {
		db, err := c.DB(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get database for http server: %w", err)
		}
		health = db
	}

	gate, err := c.Gate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gate for http server: %w", err)
	}
	authHandler, err := c.AuthHandler(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for http server: %w", err)
	}
	accountHandler, err := c.AccountHandler(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get account handler for http server: %w", err)
	}
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(health, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(ctx, http.RouterDependencies{
		Config:          c.config,
		Gate:            gate,
		Policy:          http.NewPolicy(),
		AuthHandler:     authHandler,
		AccountHandler:  accountHandler,
		MetricsProvider: provider,
	})
	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}
	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
