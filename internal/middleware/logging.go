package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awaleed99/bite-back0/internal/httperr"
)

// LoggingMiddleware logs one line per request. Headers and bodies are never
// logged, so tokens and passwords stay out of the logs.
func LoggingMiddleware(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes_written", c.Writer.Size(),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(httperr.ContextRequestID),
		}
		if p := CurrentPrincipal(c); p != nil {
			attrs = append(attrs, "user_id", p.ID.String())
		}

		logger.Log(c.Request.Context(), level, "HTTP request", attrs...)
	}
}
