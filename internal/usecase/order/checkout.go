package order

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/awaleed99/bite-back0/internal/audit"
	"github.com/awaleed99/bite-back0/internal/config"
	cartdomain "github.com/awaleed99/bite-back0/internal/domain/cart"
	domain "github.com/awaleed99/bite-back0/internal/domain/order"
	"github.com/awaleed99/bite-back0/internal/models"
	"github.com/awaleed99/bite-back0/internal/payment"
)

const (
	orderNumberAttempts    = 3
	defaultDeliveryMinutes = 30
)

// ======================================================
// INPUT
// ======================================================

type CheckoutInput struct {
	Actor                domain.Actor
	PaymentMethodID      uuid.UUID
	DeliveryLocationID   uuid.UUID
	DeliveryInstructions *string
}

// ======================================================
// USE CASE
// ======================================================

type Checkout struct {
	repo    domain.Repository
	gateway payment.Gateway
	audit   audit.Recorder
	logger  *slog.Logger
	vat     int
	now     func() time.Time
}

func NewCheckout(
	repo domain.Repository,
	gateway payment.Gateway,
	audit audit.Recorder,
	logger *slog.Logger,
	cfg *config.Config,
) *Checkout {
	return &Checkout{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
		logger:  logger,
		vat:     cfg.VATPercentage,
		now:     time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute turns the caller's cart into a paid order. Everything happens in one
// transaction: on any failure, including a declined charge, nothing is written
// and the cart keeps its items.
func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) (*models.Order, error) {
	var (
		orderID uuid.UUID
		err     error
	)

	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		orderID, err = uc.place(ctx, in)
		if !errors.Is(err, domain.ErrDuplicateOrderNumber) {
			break
		}
		uc.logger.WarnContext(ctx, "order number collision, retrying", "attempt", attempt)
	}
	if err != nil {
		return nil, err
	}

	order, err := uc.repo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   audit.Ptr(in.Actor.ID),
		Action:   "order_placed",
		Entity:   "order",
		EntityID: audit.Ptr(order.ID),
		Metadata: map[string]string{"orderNumber": order.OrderNumber, "total": order.Total.StringFixed(2)},
	})

	return order, nil
}

func (uc *Checkout) place(ctx context.Context, in CheckoutInput) (uuid.UUID, error) {
	var orderID uuid.UUID

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		// --------------------------------------------------
		// 1. Cart (row locked until commit)
		// --------------------------------------------------
		cart, err := tx.LockCart(ctx, in.Actor.ID)
		if err != nil {
			return err
		}
		if cart == nil || len(cart.Items) == 0 {
			return errCartEmpty
		}
		if cart.Restaurant == nil {
			return errCartWithoutRestaurant
		}
		for i := range cart.Items {
			if err := cartdomain.CheckLine(cart.RestaurantID, &cart.Items[i]); err != nil {
				return err
			}
		}
		summary := cartdomain.Summarize(cart)
		restaurant := cart.Restaurant

		// --------------------------------------------------
		// 2. Ownership of location and payment method
		// --------------------------------------------------
		location, err := tx.FindLocation(ctx, in.Actor.ID, in.DeliveryLocationID)
		if errors.Is(err, domain.ErrLocationNotFound) {
			return errLocationNotFound
		}
		if err != nil {
			return err
		}

		method, err := tx.FindPaymentMethod(ctx, in.Actor.ID, in.PaymentMethodID)
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return errPaymentMethodNotFound
		}
		if err != nil {
			return err
		}

		// --------------------------------------------------
		// 3. Pricing
		// --------------------------------------------------
		if err := domain.CheckMinimum(summary.Subtotal, restaurant.MinOrderAmount); err != nil {
			return err
		}
		quote := domain.ComputeQuote(summary.Subtotal, restaurant.DeliveryFee, uc.vat)

		// --------------------------------------------------
		// 4. Order snapshot
		// --------------------------------------------------
		now := uc.now()
		number, err := domain.NewOrderNumber(now)
		if err != nil {
			return err
		}

		order := buildOrder(in, number, restaurant, location, summary, quote, now)
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		// --------------------------------------------------
		// 5. Payment
		// --------------------------------------------------
		charge, err := uc.gateway.Charge(ctx, payment.ChargeRequest{
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Amount:      quote.Total,
			Method:      method,
			PayerEmail:  in.Actor.Email,
		})
		if err != nil {
			uc.logger.ErrorContext(ctx, "payment gateway failed", "orderNumber", order.OrderNumber, "error", err)
			return errPaymentDeclined
		}
		if charge.Status != models.PaymentStatusPaid {
			return errPaymentDeclined.WithDetails(map[string]string{"status": string(charge.Status)})
		}

		processedAt := uc.now()
		if err := tx.CreateTransaction(ctx, &models.PaymentTransaction{
			OrderID:         order.ID,
			PaymentMethodID: method.ID,
			Amount:          quote.Total,
			Status:          charge.Status,
			TransactionRef:  charge.Reference,
			Gateway:         charge.Gateway,
			ProcessedAt:     &processedAt,
		}); err != nil {
			return err
		}

		// --------------------------------------------------
		// 6. PLACED + empty cart
		// --------------------------------------------------
		order.PaymentStatus = models.PaymentStatusPaid
		domain.Apply(order, domain.StatusPlaced, nil, processedAt)
		if err := tx.UpdateStatus(ctx, order, domain.InitialStatus()); err != nil {
			return err
		}

		if err := tx.ClearCart(ctx, cart.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})

	return orderID, err
}

func buildOrder(
	in CheckoutInput,
	number string,
	restaurant *models.Restaurant,
	location *models.Location,
	summary cartdomain.Summary,
	quote domain.Quote,
	now time.Time,
) *models.Order {
	minutes := restaurant.DeliveryTimeMinutes
	if minutes <= 0 {
		minutes = defaultDeliveryMinutes
	}
	eta := now.Add(time.Duration(minutes) * time.Minute)

	order := &models.Order{
		OrderNumber:           number,
		UserID:                in.Actor.ID,
		RestaurantID:          restaurant.ID,
		LocationID:            &location.ID,
		Subtotal:              quote.Subtotal,
		DeliveryFee:           quote.DeliveryFee,
		VATAmount:             quote.VATAmount,
		VATPercentage:         quote.VATPercentage,
		Total:                 quote.Total,
		Status:                string(domain.InitialStatus()),
		PaymentStatus:         models.PaymentStatusPending,
		DeliveryAddress:       location.FullAddress(),
		DeliveryInstructions:  in.DeliveryInstructions,
		EstimatedDeliveryTime: &eta,
		Items:                 make([]models.OrderItem, 0, len(summary.Items)),
	}

	for _, line := range summary.Items {
		item := models.OrderItem{
			MenuItemID:          line.MenuItem.ID,
			Name:                line.MenuItem.Name,
			Price:               line.UnitPrice,
			Quantity:            line.Quantity,
			Subtotal:            line.LineTotal,
			SpecialInstructions: line.SpecialInstructions,
			AddOns:              make([]models.OrderItemAddOn, 0, len(line.AddOns)),
		}
		for _, a := range line.AddOns {
			item.AddOns = append(item.AddOns, models.OrderItemAddOn{
				AddOnOptionID: a.AddOnOptionID,
				Name:          a.Name,
				Price:         a.Price,
				Quantity:      a.Quantity,
				Subtotal:      a.Price.Mul(decimal.NewFromInt(int64(a.Quantity))),
			})
		}
		order.Items = append(order.Items, item)
	}

	return order
}
