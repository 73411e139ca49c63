package paymentmethod

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/awaleed99/bite-back0/internal/db/dbtest"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/infra/repository"
	"github.com/awaleed99/bite-back0/internal/models"
)

type env struct {
	db   *gorm.DB
	repo *repository.PaymentMethodGormRepository
	ana  uuid.UUID
	bob  uuid.UUID
}

func setup(t *testing.T) *env {
	t.Helper()
	db := dbtest.New(t)
	ana := models.User{Email: "ana@example.com", Phone: "+201000000001", PasswordHash: "x", FullName: "Ana"}
	bob := models.User{Email: "bob@example.com", Phone: "+201000000002", PasswordHash: "x", FullName: "Bob"}
	require.NoError(t, db.Create(&ana).Error)
	require.NoError(t, db.Create(&bob).Error)
	return &env{db: db, repo: repository.NewPaymentMethodGormRepository(db), ana: ana.ID, bob: bob.ID}
}

func (e *env) add(t *testing.T, userID uuid.UUID, number string) *models.PaymentMethod {
	t.Helper()
	m, err := NewAdd(e.repo).Execute(context.Background(), AddInput{
		UserID:      userID,
		Type:        models.PaymentMethodCreditCard,
		CardNumber:  number,
		ExpiryMonth: 12,
		ExpiryYear:  2030,
	})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	return m
}

func TestAdd(t *testing.T) {
	e := setup(t)

	visa := e.add(t, e.ana, "4111 1111 1111 1234")
	assert.Equal(t, "1234", visa.LastFourDigits)
	assert.Equal(t, "Visa", visa.CardBrand)
	assert.Regexp(t, `^tok_\d+_[a-z0-9]{9}$`, visa.CardToken)
	assert.True(t, visa.IsDefault, "first method is the default")

	mc := e.add(t, e.ana, "5500000000000004")
	assert.Equal(t, "Mastercard", mc.CardBrand)
	assert.False(t, mc.IsDefault)

	withToken, err := NewAdd(e.repo).Execute(context.Background(), AddInput{
		UserID: e.ana, Type: models.PaymentMethodDebitCard, CardNumber: "6011000000000012",
		ExpiryMonth: 1, ExpiryYear: 2031, CardToken: "card_tok_from_client",
	})
	require.NoError(t, err)
	assert.Equal(t, "card_tok_from_client", withToken.CardToken)
	assert.Equal(t, "Discover", withToken.CardBrand)

	list, err := NewList(e.repo).Execute(context.Background(), e.ana)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, visa.ID, list[0].ID, "default first")
	assert.Equal(t, withToken.ID, list[1].ID, "then newest")

	_, err = NewAdd(e.repo).Execute(context.Background(), AddInput{UserID: e.ana, CardNumber: "12"})
	assert.True(t, httperr.IsBusiness(err, "invalid_card_number"))
}

func TestRemove(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	first := e.add(t, e.ana, "4111111111111111")
	second := e.add(t, e.ana, "378282246310005")
	third := e.add(t, e.ana, "5500000000000004")

	err := NewRemove(e.repo).Execute(ctx, e.bob, first.ID)
	assert.True(t, httperr.IsBusiness(err, "payment_method_not_found"))

	// a pending transaction blocks removal
	restaurant := models.Restaurant{Name: "Burger Lab", IsActive: true}
	require.NoError(t, e.db.Create(&restaurant).Error)
	order := models.Order{
		OrderNumber: "ORD-1-AAAAAA", UserID: e.ana, RestaurantID: restaurant.ID,
		Status: "PENDING_PAYMENT", PaymentStatus: models.PaymentStatusPending, DeliveryAddress: "12 Nile St",
	}
	require.NoError(t, e.db.Create(&order).Error)
	require.NoError(t, e.db.Create(&models.PaymentTransaction{
		OrderID: order.ID, PaymentMethodID: second.ID, Amount: decimal.NewFromInt(10),
		Status: models.PaymentStatusPending, TransactionRef: "TXN-1", Gateway: "mock",
	}).Error)
	err = NewRemove(e.repo).Execute(ctx, e.ana, second.ID)
	assert.True(t, httperr.IsBusiness(err, "payment_method_in_use"))

	// removing the default promotes the newest remaining
	require.NoError(t, NewRemove(e.repo).Execute(ctx, e.ana, first.ID))
	list, err := NewList(e.repo).Execute(ctx, e.ana)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, third.ID, list[0].ID)
	assert.True(t, list[0].IsDefault)
	assert.False(t, list[1].IsDefault)
}

func TestSetDefault(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.add(t, e.ana, "4111111111111111")
	second := e.add(t, e.ana, "5500000000000004")

	m, err := NewSetDefault(e.repo).Execute(ctx, e.ana, second.ID)
	require.NoError(t, err)
	assert.True(t, m.IsDefault)

	var defaults int64
	require.NoError(t, e.db.Model(&models.PaymentMethod{}).Where("user_id = ? AND is_default = ?", e.ana, true).Count(&defaults).Error)
	assert.Equal(t, int64(1), defaults)

	_, err = NewSetDefault(e.repo).Execute(ctx, e.bob, second.ID)
	assert.True(t, httperr.IsBusiness(err, "payment_method_not_found"))
}
