package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/awaleed99/bite-back0/internal/domain/paymentmethod"
	"github.com/awaleed99/bite-back0/internal/models"
)

type PaymentMethodGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*PaymentMethodGormRepository)(nil)

func NewPaymentMethodGormRepository(db *gorm.DB) *PaymentMethodGormRepository {
	return &PaymentMethodGormRepository{db: db}
}

func (r *PaymentMethodGormRepository) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentMethod{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count payment methods: %w", err)
	}
	return n, nil
}

func (r *PaymentMethodGormRepository) Create(ctx context.Context, m *models.PaymentMethod) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if m.IsDefault {
			if err := clearDefault(tx, &models.PaymentMethod{}, m.UserID, m.ID); err != nil {
				return err
			}
		}
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create payment method: %w", err)
		}
		return nil
	})
}

func (r *PaymentMethodGormRepository) List(ctx context.Context, userID uuid.UUID) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC").
		Order("created_at DESC").
		Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	return methods, nil
}

func (r *PaymentMethodGormRepository) Find(ctx context.Context, userID, id uuid.UUID) (*models.PaymentMethod, error) {
	return findPaymentMethod(r.db.WithContext(ctx), userID, id)
}

func (r *PaymentMethodGormRepository) HasPendingTransactions(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("payment_method_id = ? AND status = ?", id, models.PaymentStatusPending).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("count pending transactions: %w", err)
	}
	return n > 0, nil
}

func (r *PaymentMethodGormRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findPaymentMethod(tx, userID, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(m).Error; err != nil {
			return fmt.Errorf("delete payment method: %w", err)
		}
		if m.IsDefault {
			return promoteNewest(tx, &models.PaymentMethod{}, userID)
		}
		return nil
	})
}

func (r *PaymentMethodGormRepository) SetDefault(ctx context.Context, userID, id uuid.UUID) (*models.PaymentMethod, error) {
	var m *models.PaymentMethod
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if m, err = findPaymentMethod(tx, userID, id); err != nil {
			return err
		}
		if err := clearDefault(tx, &models.PaymentMethod{}, userID, id); err != nil {
			return err
		}
		m.IsDefault = true
		if err := tx.Model(m).Update("is_default", true).Error; err != nil {
			return fmt.Errorf("set default payment method: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func findPaymentMethod(db *gorm.DB, userID, id uuid.UUID) (*models.PaymentMethod, error) {
	var m models.PaymentMethod
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	if isNotFound(err) {
		return nil, domain.ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	return &m, nil
}
