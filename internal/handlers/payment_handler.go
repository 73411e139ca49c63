package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/middleware"
	"github.com/awaleed99/bite-back0/internal/models"
	ucPayment "github.com/awaleed99/bite-back0/internal/usecase/paymentmethod"
)

type PaymentHandler struct {
	add        *ucPayment.Add
	list       *ucPayment.List
	remove     *ucPayment.Remove
	setDefault *ucPayment.SetDefault
}

func NewPaymentHandler(
	add *ucPayment.Add,
	list *ucPayment.List,
	remove *ucPayment.Remove,
	setDefault *ucPayment.SetDefault,
) *PaymentHandler {
	return &PaymentHandler{add: add, list: list, remove: remove, setDefault: setDefault}
}

// AddPaymentMethodRequest carries the raw card only long enough to tokenize it.
// The CVV is validated and dropped.
type AddPaymentMethodRequest struct {
	Type        string `json:"type" binding:"required,oneof=CREDIT_CARD DEBIT_CARD"`
	CardNumber  string `json:"cardNumber" binding:"required,numeric,min=13,max=19"`
	ExpiryMonth int    `json:"expiryMonth" binding:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiryYear" binding:"required,min=2024,max=2040"`
	CVV         string `json:"cvv" binding:"required,numeric,min=3,max=4"`
	CardToken   string `json:"cardToken" binding:"omitempty,max=255"`
}

func (h *PaymentHandler) Add(c *gin.Context) {
	var req AddPaymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.add.Execute(c.Request.Context(), ucPayment.AddInput{
		UserID:      middleware.CurrentUserID(c),
		Type:        models.PaymentMethodType(req.Type),
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CardToken:   req.CardToken,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, m)
}

func (h *PaymentHandler) List(c *gin.Context) {
	methods, err := h.list.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, methods)
}

func (h *PaymentHandler) Remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, httpresp.Message{Message: "Payment method removed successfully"})
}

func (h *PaymentHandler) SetDefault(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	m, err := h.setDefault.Execute(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, m)
}
