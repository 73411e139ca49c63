package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/audit"
	domain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/security"
)

type ChangePassword struct {
	repo   domain.Repository
	hasher *security.PasswordHasher
	audit  audit.Recorder
}

func NewChangePassword(repo domain.Repository, hasher *security.PasswordHasher, audit audit.Recorder) *ChangePassword {
	return &ChangePassword{repo: repo, hasher: hasher, audit: audit}
}

func (uc *ChangePassword) Execute(ctx context.Context, userID uuid.UUID, current, next string) error {
	u, err := findUser(ctx, uc.repo, userID)
	if err != nil {
		return err
	}

	if !uc.hasher.Compare(u.PasswordHash, current) {
		return errWrongPassword
	}

	hash, err := uc.hasher.Hash(next)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   audit.Ptr(u.ID),
		Action:   "password_changed",
		Entity:   "user",
		EntityID: audit.Ptr(u.ID),
	})
	return nil
}
