package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/audit"
	domain "github.com/awaleed99/bite-back0/internal/domain/order"
	"github.com/awaleed99/bite-back0/internal/models"
)

type UpdateStatusInput struct {
	Actor   domain.Actor
	OrderID uuid.UUID
	Status  domain.Status
	Reason  *string
}

type UpdateStatus struct {
	repo  domain.Repository
	audit audit.Recorder
	now   func() time.Time
}

func NewUpdateStatus(repo domain.Repository, audit audit.Recorder) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: audit, now: time.Now}
}

func (uc *UpdateStatus) Execute(ctx context.Context, in UpdateStatusInput) (*models.Order, error) {
	if !in.Status.Valid() || in.Status == domain.StatusPendingPayment {
		return nil, errInvalidStatus
	}

	order, err := findOrder(ctx, uc.repo, in.OrderID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(in.Actor, order, restaurantOwner(order), in.Status); err != nil {
		return nil, err
	}

	previous := order.Status
	domain.Apply(order, in.Status, in.Reason, uc.now())

	err = uc.repo.UpdateStatus(ctx, order, domain.Status(previous))
	if errors.Is(err, domain.ErrStatusChanged) {
		return nil, errStatusChanged
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   audit.Ptr(in.Actor.ID),
		Action:   "order_status_changed",
		Entity:   "order",
		EntityID: audit.Ptr(order.ID),
		Metadata: map[string]string{"from": previous, "to": order.Status},
	})

	return order, nil
}
