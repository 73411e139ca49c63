package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/awaleed99/bite-back0/internal/domain/location"
	"github.com/awaleed99/bite-back0/internal/models"
)

type LocationGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*LocationGormRepository)(nil)

func NewLocationGormRepository(db *gorm.DB) *LocationGormRepository {
	return &LocationGormRepository{db: db}
}

func (r *LocationGormRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Location{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return n, nil
}

func (r *LocationGormRepository) Create(ctx context.Context, loc *models.Location) error {
	if loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if loc.IsDefault {
			if err := clearDefault(tx, &models.Location{}, loc.UserID, loc.ID); err != nil {
				return err
			}
		}
		if err := tx.Create(loc).Error; err != nil {
			return fmt.Errorf("create location: %w", err)
		}
		return nil
	})
}

func (r *LocationGormRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	var locs []models.Location
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&locs).Error; err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locs, nil
}

func (r *LocationGormRepository) Find(ctx context.Context, userID, id uuid.UUID) (*models.Location, error) {
	return findLocation(r.db.WithContext(ctx), userID, id)
}

func (r *LocationGormRepository) Update(ctx context.Context, loc *models.Location) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if loc.IsDefault {
			if err := clearDefault(tx, &models.Location{}, loc.UserID, loc.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(loc).Error; err != nil {
			return fmt.Errorf("update location: %w", err)
		}
		return nil
	})
}

func (r *LocationGormRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		loc, err := findLocation(tx, userID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(loc).Error; err != nil {
			return fmt.Errorf("delete location: %w", err)
		}
		if loc.IsDefault {
			return promoteNewest(tx, &models.Location{}, userID)
		}
		return nil
	})
}

func (r *LocationGormRepository) SetDefault(ctx context.Context, userID, id uuid.UUID) (*models.Location, error) {
	var loc *models.Location
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if loc, err = findLocation(tx, userID, id); err != nil {
			return err
		}
		if err := clearDefault(tx, &models.Location{}, userID, id); err != nil {
			return err
		}
		loc.IsDefault = true
		if err := tx.Model(loc).Update("is_default", true).Error; err != nil {
			return fmt.Errorf("set default location: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

func findLocation(db *gorm.DB, userID, id uuid.UUID) (*models.Location, error) {
	var loc models.Location
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&loc).Error
	if isNotFound(err) {
		return nil, domain.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find location: %w", err)
	}
	return &loc, nil
}
