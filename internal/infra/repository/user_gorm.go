package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if isNotFound(err) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *UserGormRepository) EmailInUse(ctx context.Context, email string, exceptID uuid.UUID) (bool, error) {
	return r.inUse(ctx, "email", email, exceptID)
}

func (r *UserGormRepository) PhoneInUse(ctx context.Context, phone string, exceptID uuid.UUID) (bool, error) {
	return r.inUse(ctx, "phone", phone, exceptID)
}

func (r *UserGormRepository) inUse(ctx context.Context, column, value string, exceptID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(column+" = ? AND id <> ?", value, exceptID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check %s: %w", column, err)
	}
	return n > 0, nil
}

func (r *UserGormRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	res := r.db.WithContext(ctx).
		Model(u).
		Select("full_name", "email", "phone", "is_email_verified", "is_phone_verified", "updated_at").
		Updates(u)

	if what, ok := uniqueViolation(res.Error); ok {
		if strings.Contains(what, "phone") {
			return domain.ErrPhoneTaken
		}
		return domain.ErrEmailTaken
	}
	if res.Error != nil {
		return fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserGormRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.updateColumn(ctx, id, "password_hash", hash)
}

func (r *UserGormRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, url string) error {
	return r.updateColumn(ctx, id, "avatar_url", url)
}

func (r *UserGormRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update %s: %w", column, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// --------------------------------------------------
// Notification settings
// --------------------------------------------------

func (r *UserGormRepository) GetOrCreateSettings(ctx context.Context, userID uuid.UUID) (*models.NotificationSettings, error) {
	db := r.db.WithContext(ctx)

	defaults := models.DefaultNotificationSettings(userID)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return nil, fmt.Errorf("create settings: %w", err)
	}

	var s models.NotificationSettings
	if err := db.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &s, nil
}

func (r *UserGormRepository) UpdateSettings(ctx context.Context, s *models.NotificationSettings) error {
	err := r.db.WithContext(ctx).
		Model(s).
		Select("push_notifications", "sms_notifications", "promotional_emails", "order_updates", "updated_at").
		Updates(s).Error
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
