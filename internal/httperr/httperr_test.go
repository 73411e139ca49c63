package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(ContextRequestID, "req-1")
		c.Next()
	})
	r.GET("/x", h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond_BusinessKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", ErrValidation("VALIDATION_ERROR", "bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad request", ErrBadRequest("cart_empty", "cart is empty"), http.StatusBadRequest, "cart_empty"},
		{"unauthorized", ErrUnauthorized("invalid_credentials", "invalid credentials"), http.StatusUnauthorized, "invalid_credentials"},
		{"forbidden", ErrForbidden("access_denied", "access denied"), http.StatusForbidden, "access_denied"},
		{"not found", ErrNotFound("order_not_found", "order not found"), http.StatusNotFound, "order_not_found"},
		{"conflict", ErrConflict("email_taken", "email taken"), http.StatusConflict, "email_taken"},
		{"legacy code", ErrBusiness("invalid_state"), http.StatusBadRequest, "invalid_state"},
		{"wrapped", errors.Join(errors.New("ctx"), ErrNotFound("nf", "nf")), http.StatusNotFound, "nf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serve(t, func(c *gin.Context) { Respond(c, tt.err) })

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, "/x", body.Meta.Path)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			assert.NotEmpty(t, body.Meta.Timestamp)
		})
	}
}

func TestRespond_InternalErrorIsOpaque(t *testing.T) {
	w, body := serve(t, func(c *gin.Context) {
		Respond(c, errors.New("pq: connection refused to 10.0.0.5"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestBusinessHelpers(t *testing.T) {
	err := ErrBadRequest("below_minimum", "too low").WithDetails(map[string]string{"shortfall": "5"})

	assert.True(t, IsBusiness(err, "below_minimum"))
	assert.False(t, IsBusiness(err, "other"))
	assert.Equal(t, KindBadRequest, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.NotNil(t, err.Details)
}
