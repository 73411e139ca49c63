package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrPhoneTaken       = errors.New("phone already registered")
	ErrTokenNotFound    = errors.New("token not found")
	ErrTokenAlreadyUsed = errors.New("token already used")
)

type Repository interface {
	// -------- User --------
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*models.User, error)
	FindUserByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error)

	// CreateUser stores the user together with its notification settings and,
	// when refresh is not nil, its first refresh token, all in one transaction.
	// Returns ErrEmailTaken / ErrPhoneTaken on uniqueness violations.
	CreateUser(
		ctx context.Context,
		user *models.User,
		settings *models.NotificationSettings,
		refresh *models.RefreshToken,
	) error

	MarkPhoneVerified(ctx context.Context, userID uuid.UUID) error

	// -------- Refresh tokens --------
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)

	// RotateRefreshToken revokes old and stores next in one transaction.
	// Returns ErrTokenAlreadyUsed if old was revoked concurrently.
	RotateRefreshToken(ctx context.Context, old *models.RefreshToken, next *models.RefreshToken, now time.Time) error

	RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID, now time.Time) error

	// -------- Password reset --------

	// CreatePasswordResetToken stores token and marks any earlier unused token of
	// the same user as used.
	CreatePasswordResetToken(ctx context.Context, token *models.PasswordResetToken, now time.Time) error
	FindPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error)

	// ResetPassword consumes the reset token, stores the new hash and revokes
	// every active refresh token of the user atomically.
	ResetPassword(ctx context.Context, reset *models.PasswordResetToken, passwordHash string, now time.Time) error
}
