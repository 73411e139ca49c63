package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/awaleed99/bite-back0/internal/httperr"
)

// RecoveryMiddleware turns a panic into a generic INTERNAL_ERROR envelope and
// logs the stack.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "Panic recovered",
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(httperr.ContextRequestID),
					"stack", string(debug.Stack()),
				)
				httperr.Internal(c)
			}
		}()

		c.Next()
	}
}
