package user

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")
	ErrPhoneTaken   = errors.New("phone already in use")
)

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// EmailInUse / PhoneInUse report whether another user (not exceptID) holds the value.
	EmailInUse(ctx context.Context, email string, exceptID uuid.UUID) (bool, error)
	PhoneInUse(ctx context.Context, phone string, exceptID uuid.UUID) (bool, error)

	// UpdateProfile persists name, contact fields and their verification flags.
	// Returns ErrEmailTaken / ErrPhoneTaken on a unique violation.
	UpdateProfile(ctx context.Context, u *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateAvatar(ctx context.Context, id uuid.UUID, url string) error

	// -------- Notification settings --------

	// GetOrCreateSettings returns the user's settings, creating the defaults on first access.
	GetOrCreateSettings(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error)
	UpdateSettings(ctx context.Context, s *models.NotificationSettings) error
}
