package auth

import (
	"context"
	"errors"
	"time"

	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/security"
)

type RefreshToken struct {
	repo     domain.Repository
	tokens   *security.TokenManager
	sessions sessionIssuer
}

func NewRefreshToken(repo domain.Repository, tokens *security.TokenManager) *RefreshToken {
	return &RefreshToken{
		repo:     repo,
		tokens:   tokens,
		sessions: sessionIssuer{repo: repo, tokens: tokens},
	}
}

// Execute rotates a refresh token: the presented token is revoked, linked to
// its replacement, and a new pair is returned. Every failure looks the same to
// the caller.
func (uc *RefreshToken) Execute(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := uc.tokens.Verify(refreshToken, security.TokenRefresh)
	if err != nil {
		return nil, errInvalidRefresh
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, errInvalidRefresh
	}

	stored, err := uc.repo.FindRefreshToken(ctx, refreshToken)
	if errors.Is(err, domain.ErrTokenNotFound) {
		return nil, errInvalidRefresh
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if stored.UserID != userID || !stored.Active(now) {
		return nil, errInvalidRefresh
	}

	user, err := uc.repo.FindUserByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errInvalidRefresh
	}
	if err != nil {
		return nil, err
	}

	pair, next, err := uc.sessions.sign(user)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.RotateRefreshToken(ctx, stored, next, now); err != nil {
		if errors.Is(err, domain.ErrTokenAlreadyUsed) {
			return nil, errInvalidRefresh
		}
		return nil, err
	}

	return pair, nil
}
