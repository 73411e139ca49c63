package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awaleed99/bite-back0/internal/cache"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/usecase/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuthenticator struct {
	principals map[string]*auth.Principal
}

func (f fakeAuthenticator) Execute(_ context.Context, token string) (*auth.Principal, error) {
	if p, ok := f.principals[token]; ok {
		return p, nil
	}
	return nil, httperr.ErrUnauthorized("invalid_token", "Invalid or expired access token")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.ErrorResponse {
	t.Helper()
	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	user := &auth.Principal{ID: uuid.New(), Email: "a@b.co", Role: models.RoleUser}
	authn := fakeAuthenticator{principals: map[string]*auth.Principal{"good": user}}

	r := gin.New()
	r.Use(AuthMiddleware(authn))
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c).String(), "token": AccessToken(c)})
	})

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing header", "", http.StatusUnauthorized, "missing_token"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "invalid_authorization_header"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "invalid_authorization_header"},
		{"rejected token", "Bearer bad", http.StatusUnauthorized, "invalid_token"},
		{"valid token", "Bearer good", http.StatusOK, ""},
		{"case insensitive scheme", "bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeError(t, w).Error.Code)
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, user.ID.String(), body["id"])
			assert.Equal(t, "good", body["token"])
		})
	}
}

func TestRequireRole(t *testing.T) {
	authn := fakeAuthenticator{principals: map[string]*auth.Principal{
		"user":  {ID: uuid.New(), Role: models.RoleUser},
		"admin": {ID: uuid.New(), Role: models.RoleAdmin},
	}}

	r := gin.New()
	r.GET("/admin", AuthMiddleware(authn), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for token, status := range map[string]int{"user": http.StatusForbidden, "admin": http.StatusNoContent} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, status, w.Code, token)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(httperr.ContextRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "client-id-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-id-1", w.Header().Get(RequestIDHeader))
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RecoveryMiddleware(setupTestLogger()))
	r.GET("/boom", func(c *gin.Context) { panic("secret detail") })
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "success") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotEmpty(t, body.Meta.RequestID)
	assert.NotContains(t, w.Body.String(), "secret detail")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", w.Body.String())
}

func TestLoggingMiddleware_DoesNotAlterResponse(t *testing.T) {
	r := gin.New()
	r.Use(LoggingMiddleware(setupTestLogger(), "/health"))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for path, status := range map[string]int{"/health": http.StatusOK, "/missing": http.StatusNotFound} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, status, w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3001")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3001", w.Header().Get("Access-Control-Allow-Origin"))

	restricted := gin.New()
	restricted.Use(CORSMiddleware("https://app.biteback.io"))
	restricted.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	restricted.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	store := cache.NewRedisStoreFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	r := gin.New()
	r.POST("/login", RateLimit(store, "login", 2, time.Minute, setupTestLogger()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	assert.Equal(t, http.StatusOK, do().Code)

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, w).Error.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, http.StatusOK, do().Code)
}
