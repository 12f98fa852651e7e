package http

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// LoginRateLimitMiddleware limits unauthenticated login attempts per client IP, as
// reported by gin's ClientIP (trusted proxies honoured). The bucket cleanup stops when
// ctx is done.
func LoginRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore(rps, burst)
	go store.cleanupStale(ctx, limiterCleanupInterval)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		allowed, retryAfter := store.allow(clientIP)
		if !allowed {
			logger.DebugContext(c.Request.Context(), "login rate limit exceeded",
				slog.String("client_ip", clientIP),
				slog.Int("retry_after", retryAfter))
			writeRateLimited(c, retryAfter,
				"Too many login attempts from this IP. Please retry after the specified delay.")
			return
		}

		c.Next()
	}
}
