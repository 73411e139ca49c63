package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/config"
	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/notify"
)

// ForgotPasswordMessage is returned whether or not the account exists.
const ForgotPasswordMessage = "If an account exists, a password reset link has been sent"

type ForgotPassword struct {
	repo        domain.Repository
	notifier    notify.Notifier
	ttl         time.Duration
	exposeToken bool
}

func NewForgotPassword(repo domain.Repository, notifier notify.Notifier, cfg *config.Config) *ForgotPassword {
	return &ForgotPassword{
		repo:        repo,
		notifier:    notifier,
		ttl:         cfg.PasswordResetExpiration,
		exposeToken: !cfg.IsProduction(),
	}
}

// Execute returns the reset token only outside production; in every case the
// caller answers with ForgotPasswordMessage.
func (uc *ForgotPassword) Execute(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.FindUserByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := &models.PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.repo.CreatePasswordResetToken(ctx, token, now); err != nil {
		return "", err
	}

	if err := uc.notifier.SendPasswordReset(ctx, user.Email, token.Token); err != nil {
		return "", err
	}

	if uc.exposeToken {
		return token.Token, nil
	}
	return "", nil
}
