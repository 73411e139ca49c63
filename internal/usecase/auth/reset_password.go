package auth

import (
	"context"
	"errors"
	"time"

	"github.com/awaleed99/bite-back0/internal/audit"
	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/security"
)

type ResetPassword struct {
	repo   domain.Repository
	hasher *security.PasswordHasher
	audit  audit.Recorder
}

func NewResetPassword(repo domain.Repository, hasher *security.PasswordHasher, audit audit.Recorder) *ResetPassword {
	return &ResetPassword{repo: repo, hasher: hasher, audit: audit}
}

func (uc *ResetPassword) Execute(ctx context.Context, token, newPassword string) error {
	now := time.Now()

	reset, err := uc.repo.FindPasswordResetToken(ctx, token)
	if errors.Is(err, domain.ErrTokenNotFound) {
		return errInvalidResetToken
	}
	if err != nil {
		return err
	}
	if reset.UsedAt != nil || !now.Before(reset.ExpiresAt) {
		return errInvalidResetToken
	}

	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := uc.repo.ResetPassword(ctx, reset, hash, now); err != nil {
		if errors.Is(err, domain.ErrTokenAlreadyUsed) {
			return errInvalidResetToken
		}
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   audit.Ptr(reset.UserID),
		Action:   "password_reset",
		Entity:   "user",
		EntityID: audit.Ptr(reset.UserID),
	})
	return nil
}
