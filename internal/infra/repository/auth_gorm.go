package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/awaleed99/bite-back0/internal/domain/auth"
	"github.com/awaleed99/bite-back0/internal/models"
)

type AuthGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*AuthGormRepository)(nil)

func NewAuthGormRepository(db *gorm.DB) *AuthGormRepository {
	return &AuthGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AuthGormRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.findUser(ctx, "id = ?", id)
}

func (r *AuthGormRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findUser(ctx, "email = ?", email)
}

func (r *AuthGormRepository) FindUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.findUser(ctx, "phone = ?", phone)
}

func (r *AuthGormRepository) FindUserByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error) {
	return r.findUser(ctx, "email = ? OR phone = ?", identifier, identifier)
}

func (r *AuthGormRepository) findUser(ctx context.Context, query string, args ...any) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *AuthGormRepository) CreateUser(
	ctx context.Context,
	user *models.User,
	settings *models.NotificationSettings,
	refresh *models.RefreshToken,
) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		settings.UserID = user.ID
		if err := tx.Create(settings).Error; err != nil {
			return err
		}
		if refresh == nil {
			return nil
		}
		refresh.UserID = user.ID
		return tx.Omit("User").Create(refresh).Error
	})
	if err == nil {
		return nil
	}

	if what, ok := uniqueViolation(err); ok {
		switch {
		case strings.Contains(what, "email"):
			return domain.ErrEmailTaken
		case strings.Contains(what, "phone"):
			return domain.ErrPhoneTaken
		}
	}
	return fmt.Errorf("create user: %w", err)
}

func (r *AuthGormRepository) MarkPhoneVerified(ctx context.Context, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("is_phone_verified", true)
	if res.Error != nil {
		return fmt.Errorf("mark phone verified: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// --------------------------------------------------
// Refresh tokens
// --------------------------------------------------

func (r *AuthGormRepository) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}
	return nil
}

func (r *AuthGormRepository) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&rt).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &rt, nil
}

func (r *AuthGormRepository) RotateRefreshToken(
	ctx context.Context,
	old *models.RefreshToken,
	next *models.RefreshToken,
	now time.Time,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RefreshToken{}).
			Where("id = ? AND revoked_at IS NULL", old.ID).
			Updates(map[string]any{
				"revoked_at":        now,
				"replaced_by_token": next.Token,
			})
		if res.Error != nil {
			return fmt.Errorf("revoke refresh token: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrTokenAlreadyUsed
		}

		if err := tx.Create(next).Error; err != nil {
			return fmt.Errorf("create refresh token: %w", err)
		}
		return nil
	})
}

func (r *AuthGormRepository) RevokeUserRefreshTokens(ctx context.Context, userID uuid.UUID, now time.Time) error {
	return revokeRefreshTokens(r.db.WithContext(ctx), userID, now)
}

func revokeRefreshTokens(db *gorm.DB, userID uuid.UUID, now time.Time) error {
	if err := db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error; err != nil {
		return fmt.Errorf("revoke refresh tokens: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Password reset
// --------------------------------------------------

func (r *AuthGormRepository) CreatePasswordResetToken(
	ctx context.Context,
	token *models.PasswordResetToken,
	now time.Time,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PasswordResetToken{}).
			Where("user_id = ? AND used_at IS NULL", token.UserID).
			Update("used_at", now).Error; err != nil {
			return fmt.Errorf("expire reset tokens: %w", err)
		}

		if err := tx.Create(token).Error; err != nil {
			return fmt.Errorf("create reset token: %w", err)
		}
		return nil
	})
}

func (r *AuthGormRepository) FindPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	var prt models.PasswordResetToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&prt).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, fmt.Errorf("find reset token: %w", err)
	}
	return &prt, nil
}

func (r *AuthGormRepository) ResetPassword(
	ctx context.Context,
	reset *models.PasswordResetToken,
	passwordHash string,
	now time.Time,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PasswordResetToken{}).
			Where("id = ? AND used_at IS NULL", reset.ID).
			Update("used_at", now)
		if res.Error != nil {
			return fmt.Errorf("consume reset token: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrTokenAlreadyUsed
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", reset.UserID).
			Update("password_hash", passwordHash).Error; err != nil {
			return fmt.Errorf("update password: %w", err)
		}

		return revokeRefreshTokens(tx, reset.UserID, now)
	})
}
