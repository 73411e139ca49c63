package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	authdomain "github.com/awaleed99/bite-back0/internal/domain/auth"
	domain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/models"
)

type UpdateProfileInput struct {
	UserID  uuid.UUID
	Changes domain.ProfileChanges
}

type UpdateProfile struct {
	repo domain.Repository
}

func NewUpdateProfile(repo domain.Repository) *UpdateProfile {
	return &UpdateProfile{repo: repo}
}

func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	changes := in.Changes
	if changes.Email != nil {
		email := authdomain.NormalizeEmail(*changes.Email)
		changes.Email = &email
	}

	// ----------------------------------------
	// 1. Uniqueness against other users
	// ----------------------------------------
	if changes.Email != nil {
		taken, err := uc.repo.EmailInUse(ctx, *changes.Email, in.UserID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errEmailInUse
		}
	}
	if changes.Phone != nil {
		taken, err := uc.repo.PhoneInUse(ctx, *changes.Phone, in.UserID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errPhoneInUse
		}
	}

	// ----------------------------------------
	// 2. Apply + persist
	// ----------------------------------------
	u, err := findUser(ctx, uc.repo, in.UserID)
	if err != nil {
		return nil, err
	}
	changes.Apply(u)

	err = uc.repo.UpdateProfile(ctx, u)
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return nil, errEmailInUse
	case errors.Is(err, domain.ErrPhoneTaken):
		return nil, errPhoneInUse
	case errors.Is(err, domain.ErrUserNotFound):
		return nil, errUserNotFound
	case err != nil:
		return nil, err
	}

	return u, nil
}
