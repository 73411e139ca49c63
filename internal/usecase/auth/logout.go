package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/audit"
	"github.com/awaleed99/bite-back0/internal/cache"
	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/security"
)

type Logout struct {
	repo   domain.Repository
	cache  cache.Store
	tokens *security.TokenManager
	audit  audit.Recorder
}

func NewLogout(
	repo domain.Repository,
	store cache.Store,
	tokens *security.TokenManager,
	audit audit.Recorder,
) *Logout {
	return &Logout{repo: repo, cache: store, tokens: tokens, audit: audit}
}

// Execute revokes every refresh token of the user and blacklists the
// presented access token until it would have expired anyway.
func (uc *Logout) Execute(ctx context.Context, userID uuid.UUID, accessToken string) error {
	now := time.Now()

	if err := uc.repo.RevokeUserRefreshTokens(ctx, userID, now); err != nil {
		return err
	}

	if claims, err := uc.tokens.Verify(accessToken, security.TokenAccess); err == nil {
		if remaining := claims.ExpiresAt.Sub(now); remaining > 0 {
			if err := uc.cache.Set(ctx, domain.BlacklistKey(accessToken), "1", remaining); err != nil {
				return err
			}
		}
	}

	uc.audit.Record(ctx, audit.Event{
		UserID: audit.Ptr(userID),
		Action: "user_logged_out",
		Entity: "user",
	})
	return nil
}
