package auth

import (
	"context"
	"errors"

	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/security"
)

type LoginOutput struct {
	User   *models.User
	Tokens *TokenPair
}

type Login struct {
	repo     domain.Repository
	hasher   *security.PasswordHasher
	sessions sessionIssuer
}

func NewLogin(
	repo domain.Repository,
	hasher *security.PasswordHasher,
	tokens *security.TokenManager,
) *Login {
	return &Login{
		repo:     repo,
		hasher:   hasher,
		sessions: sessionIssuer{repo: repo, tokens: tokens},
	}
}

// Execute authenticates by email or phone. Unknown users and wrong passwords
// produce the same error. Existing sessions are left untouched.
func (uc *Login) Execute(ctx context.Context, emailOrPhone, password string) (*LoginOutput, error) {
	user, err := uc.repo.FindUserByEmailOrPhone(ctx, domain.NormalizeIdentifier(emailOrPhone))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !uc.hasher.Compare(user.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	tokens, err := uc.sessions.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{User: user, Tokens: tokens}, nil
}
