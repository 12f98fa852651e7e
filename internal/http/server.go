// Package http provides the gin HTTP server, its router and the ambient middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accountHTTP "github.com/linguahub/linguahub/internal/account/http"
	authDomain "github.com/linguahub/linguahub/internal/auth/domain"
	authHTTP "github.com/linguahub/linguahub/internal/auth/http"
	authUseCase "github.com/linguahub/linguahub/internal/auth/usecase"
	"github.com/linguahub/linguahub/internal/config"
	"github.com/linguahub/linguahub/internal/metrics"
)

// readinessTimeout bounds the account store ping of /ready.
const readinessTimeout = 2 * time.Second

// HealthChecker reports whether the account store is reachable. *sql.DB implements it.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Server represents the API HTTP server.
type Server struct {
	health HealthChecker
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server. health may be nil, which makes /ready fail.
func NewServer(health HealthChecker, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		health: health,
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// RouterDependencies are the collaborators SetupRouter mounts.
type RouterDependencies struct {
	Config          *config.Config
	Gate            authUseCase.Gate
	Policy          *authDomain.Policy
	AuthHandler     *authHTTP.AuthHandler
	AccountHandler  *accountHTTP.AccountHandler
	MetricsProvider *metrics.Provider
}

// SetupRouter builds the gin engine. Every protected route runs the request gate with
// the roles deps.Policy declares for its operation. ctx bounds the rate limiter cleanup.
func (s *Server) SetupRouter(ctx context.Context, deps RouterDependencies) {
	cfg := deps.Config
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	var rateLimit gin.HandlerFunc
	if cfg.RateLimitEnabled {
		rateLimit = authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger)
	}

	// protect returns the gate for operation followed by the per-identity limiter.
	protect := func(operation string, handler gin.HandlerFunc) []gin.HandlerFunc {
		chain := []gin.HandlerFunc{authHTTP.OperationMiddleware(deps.Gate, deps.Policy, operation, s.logger)}
		if rateLimit != nil {
			chain = append(chain, rateLimit)
		}
		return append(chain, handler)
	}

	v1 := router.Group("/v1")

	auth := v1.Group("/auth")
	if cfg.RateLimitLoginEnabled {
		auth.POST("/login",
			authHTTP.LoginRateLimitMiddleware(ctx, cfg.RateLimitLoginRequestsPerSec, cfg.RateLimitLoginBurst, s.logger),
			deps.AuthHandler.LoginHandler,
		)
	} else {
		auth.POST("/login", deps.AuthHandler.LoginHandler)
	}
	auth.POST("/refresh", protect(OperationTokenRefresh, deps.AuthHandler.RefreshHandler)...)

	v1.GET("/me", protect(OperationMe, deps.AuthHandler.MeHandler)...)

	accounts := v1.Group("/accounts")
	accounts.GET("", protect(OperationAccountList, deps.AccountHandler.ListHandler)...)
	accounts.POST("", protect(OperationAccountCreate, deps.AccountHandler.CreateHandler)...)
	accounts.GET("/:id", protect(OperationAccountGet, deps.AccountHandler.GetHandler)...)
	accounts.PATCH("/:id/status", protect(OperationAccountUpdateStatus, deps.AccountHandler.UpdateStatusHandler)...)
	accounts.PATCH("/:id/role", protect(OperationAccountUpdateRole, deps.AccountHandler.UpdateRoleHandler)...)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. SetupRouter must run first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router not configured: call SetupRouter before Start")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler pings the account store.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.health == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.health.PingContext(ctx); err != nil {
		s.logger.WarnContext(c.Request.Context(), "readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
