package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/awaleed99/bite-back0/internal/domain/cart"
	"github.com/awaleed99/bite-back0/internal/models"
)

type CartGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*CartGormRepository)(nil)

func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	db := r.db.WithContext(ctx)

	// concurrent first requests race on the unique user_id; the loser just reads
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Cart{UserID: userID}).Error; err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	var cart models.Cart
	if err := preloadCart(db).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &cart, nil
}

func (r *CartGormRepository) FindMenuItem(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if isNotFound(err) {
		return nil, domain.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return &item, nil
}

func (r *CartGormRepository) FindAddOnOption(ctx context.Context, id uuid.UUID) (*models.AddOnOption, error) {
	var opt models.AddOnOption
	err := r.db.WithContext(ctx).Preload("Group").First(&opt, "id = ?", id).Error
	if isNotFound(err) {
		return nil, domain.ErrAddOnOptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find add-on option: %w", err)
	}
	return &opt, nil
}

func (r *CartGormRepository) AddItem(
	ctx context.Context,
	cart *models.Cart,
	restaurantID uuid.UUID,
	item *models.CartItem,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Cart{}).
			Where("id = ?", cart.ID).
			Update("restaurant_id", restaurantID).Error; err != nil {
			return fmt.Errorf("bind cart restaurant: %w", err)
		}

		item.CartID = cart.ID
		if err := tx.Omit("MenuItem").Create(item).Error; err != nil {
			return fmt.Errorf("create cart item: %w", err)
		}
		return nil
	})
}

func (r *CartGormRepository) FindCartItem(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if isNotFound(err) {
		return nil, domain.ErrCartItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

func (r *CartGormRepository) UpdateItem(ctx context.Context, item *models.CartItem) error {
	err := r.db.WithContext(ctx).
		Model(item).
		Select("quantity", "special_instructions", "updated_at").
		Updates(item).Error
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

func (r *CartGormRepository) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_item_id = ?", itemID).Delete(&models.CartItemAddOn{}).Error; err != nil {
			return fmt.Errorf("delete cart item add-ons: %w", err)
		}

		res := tx.Where("id = ? AND cart_id = ?", itemID, cartID).Delete(&models.CartItem{})
		if res.Error != nil {
			return fmt.Errorf("delete cart item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrCartItemNotFound
		}

		var left int64
		if err := tx.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&left).Error; err != nil {
			return fmt.Errorf("count cart items: %w", err)
		}
		if left == 0 {
			if err := tx.Model(&models.Cart{}).Where("id = ?", cartID).Update("restaurant_id", nil).Error; err != nil {
				return fmt.Errorf("unbind cart: %w", err)
			}
		}
		return nil
	})
}

func (r *CartGormRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	return clearCart(r.db.WithContext(ctx), cartID)
}
