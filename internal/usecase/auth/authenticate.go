package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/cache"
	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

// Principal is the authenticated caller attached to each request.
type Principal struct {
	ID              uuid.UUID
	Email           string
	Role            models.Role
	IsPhoneVerified bool
}

type Authenticate struct {
	repo   domain.Repository
	cache  cache.Store
	tokens *security.TokenManager
}

func NewAuthenticate(repo domain.Repository, store cache.Store, tokens *security.TokenManager) *Authenticate {
	return &Authenticate{repo: repo, cache: store, tokens: tokens}
}

// Execute resolves a bearer access token to its principal. The user is
// re-read so role changes and deletions take effect immediately.
func (uc *Authenticate) Execute(ctx context.Context, accessToken string) (*Principal, error) {
	revoked, err := uc.cache.Exists(ctx, domain.BlacklistKey(accessToken))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, errTokenRevoked
	}

	claims, err := uc.tokens.Verify(accessToken, security.TokenAccess)
	if err != nil {
		return nil, errInvalidAccess
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, errInvalidAccess
	}

	user, err := uc.repo.FindUserByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errInvalidAccess
	}
	if err != nil {
		return nil, err
	}

	return &Principal{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role,
		IsPhoneVerified: user.IsPhoneVerified,
	}, nil
}
