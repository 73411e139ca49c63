package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/middleware"
	ucCart "github.com/awaleed99/bite-back0/internal/usecase/cart"
)

type CartHandler struct {
	get    *ucCart.GetCart
	add    *ucCart.AddItem
	update *ucCart.UpdateItem
	remove *ucCart.RemoveItem
	clear  *ucCart.ClearCart
}

func NewCartHandler(
	get *ucCart.GetCart,
	add *ucCart.AddItem,
	update *ucCart.UpdateItem,
	remove *ucCart.RemoveItem,
	clear *ucCart.ClearCart,
) *CartHandler {
	return &CartHandler{get: get, add: add, update: update, remove: remove, clear: clear}
}

// ======================================================
// REQUESTS
// ======================================================

type CartAddOnRequest struct {
	AddOnOptionID uuid.UUID `json:"addOnOptionId" binding:"required"`
	Quantity      *int      `json:"quantity" binding:"omitempty,min=1"`
}

type AddToCartRequest struct {
	MenuItemID          uuid.UUID          `json:"menuItemId" binding:"required"`
	Quantity            *int               `json:"quantity" binding:"omitempty,min=1"`
	SpecialInstructions *string            `json:"specialInstructions" binding:"omitempty,max=500"`
	AddOns              []CartAddOnRequest `json:"addOns" binding:"omitempty,dive"`
}

type UpdateCartItemRequest struct {
	Quantity            *int    `json:"quantity" binding:"omitempty,min=1"`
	SpecialInstructions *string `json:"specialInstructions" binding:"omitempty,max=500"`
}

func quantityOrOne(q *int) int {
	if q == nil {
		return 1
	}
	return *q
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *CartHandler) Get(c *gin.Context) {
	summary, err := h.get.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, summary)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	addOns := make([]ucCart.AddOnInput, 0, len(req.AddOns))
	for _, a := range req.AddOns {
		addOns = append(addOns, ucCart.AddOnInput{
			AddOnOptionID: a.AddOnOptionID,
			Quantity:      quantityOrOne(a.Quantity),
		})
	}

	summary, err := h.add.Execute(c.Request.Context(), ucCart.AddItemInput{
		UserID:              middleware.CurrentUserID(c),
		MenuItemID:          req.MenuItemID,
		Quantity:            quantityOrOne(req.Quantity),
		SpecialInstructions: req.SpecialInstructions,
		AddOns:              addOns,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, summary)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	summary, err := h.update.Execute(c.Request.Context(), ucCart.UpdateItemInput{
		UserID:              middleware.CurrentUserID(c),
		ItemID:              itemID,
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, summary)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.remove.Execute(c.Request.Context(), middleware.CurrentUserID(c), itemID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, summary)
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.clear.Execute(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, httpresp.Message{Message: "Cart cleared successfully"})
}
