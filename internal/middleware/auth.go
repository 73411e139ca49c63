package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/usecase/auth"
)

const (
	ContextPrincipal   = "principal"
	ContextAccessToken = "accessToken"
)

var (
	errMissingToken = httperr.ErrUnauthorized("missing_token", "Authentication required")
	errBadHeader    = httperr.ErrUnauthorized("invalid_authorization_header", "Authorization header must be a Bearer token")
	errRoleDenied   = httperr.ErrForbidden("insufficient_role", "You do not have permission to perform this action")
)

// Authenticator resolves an access token to the calling user.
type Authenticator interface {
	Execute(ctx context.Context, accessToken string) (*auth.Principal, error)
}

func AuthMiddleware(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httperr.Respond(c, errMissingToken)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Respond(c, errBadHeader)
			return
		}
		token := strings.TrimSpace(parts[1])

		principal, err := authn.Execute(c.Request.Context(), token)
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Set(ContextAccessToken, token)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p == nil {
			httperr.Respond(c, errMissingToken)
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		httperr.Respond(c, errRoleDenied)
	}
}

// CurrentPrincipal returns the authenticated caller, or nil on public routes.
func CurrentPrincipal(c *gin.Context) *auth.Principal {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

func CurrentUserID(c *gin.Context) uuid.UUID {
	if p := CurrentPrincipal(c); p != nil {
		return p.ID
	}
	return uuid.Nil
}

func AccessToken(c *gin.Context) string {
	return c.GetString(ContextAccessToken)
}
