package user

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/models"
)

type GetSettings struct {
	repo domain.Repository
}

func NewGetSettings(repo domain.Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

func (uc *GetSettings) Execute(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error) {
	return uc.repo.GetOrCreateSettings(ctx, userID)
}

type UpdateSettings struct {
	repo domain.Repository
}

func NewUpdateSettings(repo domain.Repository) *UpdateSettings {
	return &UpdateSettings{repo: repo}
}

func (uc *UpdateSettings) Execute(
	ctx context.Context,
	userID uuid.UUID,
	changes domain.SettingsChanges,
) (*models.NotificationSettings, error) {
	s, err := uc.repo.GetOrCreateSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	changes.Apply(s)
	if err := uc.repo.UpdateSettings(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
