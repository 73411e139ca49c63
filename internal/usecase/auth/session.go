package auth

import (
	"context"

	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// sessionIssuer signs an access/refresh pair and persists the refresh token.
type sessionIssuer struct {
	repo   domain.Repository
	tokens *security.TokenManager
}

func (s sessionIssuer) sign(user *models.User) (*TokenPair, *models.RefreshToken, error) {
	access, _, err := s.tokens.Issue(user, security.TokenAccess)
	if err != nil {
		return nil, nil, err
	}
	refresh, exp, err := s.tokens.Issue(user, security.TokenRefresh)
	if err != nil {
		return nil, nil, err
	}

	row := &models.RefreshToken{
		Token:     refresh,
		UserID:    user.ID,
		ExpiresAt: exp,
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, row, nil
}

func (s sessionIssuer) issue(ctx context.Context, user *models.User) (*TokenPair, error) {
	pair, row, err := s.sign(user)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateRefreshToken(ctx, row); err != nil {
		return nil, err
	}
	return pair, nil
}
