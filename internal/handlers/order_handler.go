package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderdomain "github.com/awaleed99/bite-back0/internal/domain/order"
	"github.com/awaleed99/bite-back0/internal/dto"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/models"
	ucOrder "github.com/awaleed99/bite-back0/internal/usecase/order"
)

type OrderHandler struct {
	checkout     *ucOrder.Checkout
	list         *ucOrder.ListOrders
	get          *ucOrder.GetOrder
	updateStatus *ucOrder.UpdateStatus
}

func NewOrderHandler(
	checkout *ucOrder.Checkout,
	list *ucOrder.ListOrders,
	get *ucOrder.GetOrder,
	updateStatus *ucOrder.UpdateStatus,
) *OrderHandler {
	return &OrderHandler{checkout: checkout, list: list, get: get, updateStatus: updateStatus}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckoutRequest struct {
	PaymentMethodID      uuid.UUID `json:"paymentMethodId" binding:"required"`
	DeliveryLocationID   uuid.UUID `json:"deliveryLocationId" binding:"required"`
	DeliveryInstructions *string   `json:"deliveryInstructions" binding:"omitempty,max=500"`
}

type ListOrdersQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=50"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING_PAYMENT PLACED CONFIRMED PREPARING OUT_FOR_DELIVERY DELIVERED CANCELLED"`
}

type UpdateOrderStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=PENDING_PAYMENT PLACED CONFIRMED PREPARING OUT_FOR_DELIVERY DELIVERED CANCELLED"`
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

type CheckoutResponse struct {
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *OrderHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.checkout.Execute(c.Request.Context(), ucOrder.CheckoutInput{
		Actor:                actorOf(c),
		PaymentMethodID:      req.PaymentMethodID,
		DeliveryLocationID:   req.DeliveryLocationID,
		DeliveryInstructions: req.DeliveryInstructions,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, CheckoutResponse{Message: "Order placed successfully", Order: o})
}

func (h *OrderHandler) List(c *gin.Context) {
	var q ListOrdersQuery
	if !bindQuery(c, &q) {
		return
	}

	in := ucOrder.ListOrdersInput{Actor: actorOf(c), Page: q.Page, Limit: q.Limit}
	if q.Status != "" {
		s := orderdomain.Status(q.Status)
		in.Status = &s
	}

	out, err := h.list.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.NewPage(dto.NewOrderList(out.Orders), out.Page, out.Limit, out.Total))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	o, err := h.get.Execute(c.Request.Context(), actorOf(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, o)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.updateStatus.Execute(c.Request.Context(), ucOrder.UpdateStatusInput{
		Actor:   actorOf(c),
		OrderID: id,
		Status:  orderdomain.Status(req.Status),
		Reason:  req.Reason,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, o)
}
