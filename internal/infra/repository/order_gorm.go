package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/awaleed99/bite-back0/internal/domain/order"
	"github.com/awaleed99/bite-back0/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Transaction(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------

func (r *OrderGormRepository) LockCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	var locked models.Cart
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&locked).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock cart: %w", err)
	}

	var cart models.Cart
	if err := preloadCart(r.db.WithContext(ctx)).First(&cart, "id = ?", locked.ID).Error; err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &cart, nil
}

func (r *OrderGormRepository) FindLocation(ctx context.Context, userID, id uuid.UUID) (*models.Location, error) {
	var loc models.Location
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&loc).Error
	if isNotFound(err) {
		return nil, domain.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find location: %w", err)
	}
	return &loc, nil
}

func (r *OrderGormRepository) FindPaymentMethod(ctx context.Context, userID, id uuid.UUID) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&pm).Error
	if isNotFound(err) {
		return nil, domain.ErrPaymentMethodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	return &pm, nil
}

func (r *OrderGormRepository) CreateOrder(ctx context.Context, o *models.Order) error {
	err := r.db.WithContext(ctx).Omit("User", "Restaurant", "Location", "Transaction").Create(o).Error
	if err == nil {
		return nil
	}
	if _, ok := uniqueViolation(err); ok {
		return domain.ErrDuplicateOrderNumber
	}
	return fmt.Errorf("create order: %w", err)
}

func (r *OrderGormRepository) CreateTransaction(ctx context.Context, t *models.PaymentTransaction) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create payment transaction: %w", err)
	}
	return nil
}

func (r *OrderGormRepository) ClearCart(ctx context.Context, cartID uuid.UUID) error {
	return clearCart(r.db.WithContext(ctx), cartID)
}

// --------------------------------------------------
// Queries / status
// --------------------------------------------------

func (r *OrderGormRepository) FindOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.AddOns").
		Preload("Restaurant").
		Preload("Location").
		Preload("Transaction").
		Preload("User").
		First(&o, "id = ?", id).Error
	if isNotFound(err) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

func (r *OrderGormRepository) ListOrders(ctx context.Context, f domain.ListFilter) ([]models.Order, int64, error) {
	if f.RestaurantIDs != nil && len(f.RestaurantIDs) == 0 {
		return []models.Order{}, 0, nil
	}

	q := r.db.WithContext(ctx).Model(&models.Order{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.RestaurantIDs != nil {
		q = q.Where("restaurant_id IN ?", f.RestaurantIDs)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	var orders []models.Order
	if err := q.
		Preload("Restaurant").
		Preload("Items").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

func (r *OrderGormRepository) OwnedRestaurantIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if err := r.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("owned restaurants: %w", err)
	}
	return ids, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, o *models.Order, from domain.Status) error {
	res := r.db.WithContext(ctx).
		Model(o).
		Where("status = ?", string(from)).
		Select(append([]string{"updated_at", "payment_status"}, domain.StatusColumns...)).
		Updates(o)
	if res.Error != nil {
		return fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrStatusChanged
	}
	return nil
}

// --------------------------------------------------
// shared with CartGormRepository
// --------------------------------------------------

func preloadCart(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Restaurant").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.MenuItem").
		Preload("Items.AddOns").
		Preload("Items.AddOns.AddOnOption")
}

func clearCart(db *gorm.DB, cartID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		itemIDs := tx.Model(&models.CartItem{}).Select("id").Where("cart_id = ?", cartID)
		if err := tx.Where("cart_item_id IN (?)", itemIDs).Delete(&models.CartItemAddOn{}).Error; err != nil {
			return fmt.Errorf("clear cart add-ons: %w", err)
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("clear cart items: %w", err)
		}
		if err := tx.Model(&models.Cart{}).Where("id = ?", cartID).Update("restaurant_id", nil).Error; err != nil {
			return fmt.Errorf("unbind cart: %w", err)
		}
		return nil
	})
}

