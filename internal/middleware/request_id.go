package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/httperr"
)

const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

// RequestID reuses an incoming X-Request-ID or generates one, and exposes it
// to handlers and to the response envelope.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(httperr.ContextRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
