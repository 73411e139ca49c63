package httperr

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContextRequestID is the gin context key holding the request id.
const ContextRequestID = "requestID"

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	RequestID string `json:"requestId,omitempty"`
}

type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
	Meta    Meta      `json:"meta"`
}

func NewMeta(c *gin.Context) Meta {
	return Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Path:      c.Request.URL.Path,
		RequestID: c.GetString(ContextRequestID),
	}
}

func Write(c *gin.Context, status int, body ErrorBody) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   body,
		Meta:    NewMeta(c),
	})
}

// Respond writes err as an error envelope. Business errors keep their code and
// message; anything else is logged and collapses to a generic internal error.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, be.Kind.Status(), ErrorBody{
			Code:    be.Code,
			Message: be.Message,
			Details: be.Details,
		})
		return
	}

	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(ContextRequestID),
	)
	Internal(c)
}

func Internal(c *gin.Context) {
	Write(c, KindInternal.Status(), ErrorBody{
		Code:    string(KindInternal),
		Message: "internal server error",
	})
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// BindError turns a gin binding failure into a validation envelope.
func BindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, FieldError{
				Field: lowerFirst(fe.Field()),
				Rule:  fe.Tag(),
			})
		}
		Respond(c, ErrValidation(string(KindValidation), "validation failed").WithDetails(fields))
		return
	}
	Respond(c, ErrValidation(string(KindValidation), "malformed request body"))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
