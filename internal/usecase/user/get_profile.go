package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/models"
)

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return findUser(ctx, uc.repo, userID)
}

func findUser(ctx context.Context, repo domain.Repository, id uuid.UUID) (*models.User, error) {
	u, err := repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, errUserNotFound
	}
	return u, err
}
