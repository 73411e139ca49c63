package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/config"
	"github.com/awaleed99/bite-back0/internal/models"
)

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	Type  TokenType   `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.JWTAccessSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.JWTAccessTTL,
		refreshTTL:    cfg.JWTRefreshTTL,
		now:           time.Now,
	}
}

func (m *TokenManager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// Issue signs a token of the given type for user. Every token carries a fresh
// jti, so two tokens issued in the same second never collide.
func (m *TokenManager) Issue(user *models.User, typ TokenType) (string, time.Time, error) {
	secret, ttl := m.keyFor(typ)
	now := m.now()
	exp := now.Add(ttl)

	claims := Claims{
		Email: user.Email,
		Role:  user.Role,
		Type:  typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, exp, nil
}

// Verify checks signature, expiry and token type. Any failure yields ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string, typ TokenType) (*Claims, error) {
	secret, _ := m.keyFor(typ)

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != typ || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

func (m *TokenManager) keyFor(typ TokenType) ([]byte, time.Duration) {
	if typ == TokenRefresh {
		return m.refreshSecret, m.refreshTTL
	}
	return m.accessSecret, m.accessTTL
}
