package middleware

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awaleed99/bite-back0/internal/cache"
	"github.com/awaleed99/bite-back0/internal/httperr"
)

var errRateLimited = httperr.New(httperr.KindTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests, please try again later")

// RateLimit allows at most limit requests per window for each client IP
// within scope. The counter lives in the shared cache so every instance sees
// the same window. Cache failures let the request through.
func RateLimit(store cache.Store, scope string, limit int, window time.Duration, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ip := c.ClientIP()
		key := "ratelimit:" + scope + ":" + ip

		n, err := store.IncrWindow(ctx, key, window)
		if err != nil {
			logger.WarnContext(ctx, "rate limit check failed", "scope", scope, "error", err)
			c.Next()
			return
		}

		if n > int64(limit) {
			retry := window
			if ttl, err := store.TTL(ctx, key); err == nil && ttl > 0 {
				retry = ttl
			}
			logger.WarnContext(ctx, "Rate limit exceeded",
				"scope", scope,
				"ip", ip,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			httperr.Respond(c, errRateLimited.WithDetails(map[string]int{
				"retryAfterSeconds": int(math.Ceil(retry.Seconds())),
			}))
			return
		}

		c.Next()
	}
}
