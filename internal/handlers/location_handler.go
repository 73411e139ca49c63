package handlers

import (
	"github.com/gin-gonic/gin"

	locationdomain "github.com/awaleed99/bite-back0/internal/domain/location"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/middleware"
	ucLocation "github.com/awaleed99/bite-back0/internal/usecase/location"
)

type LocationHandler struct {
	create     *ucLocation.Create
	list       *ucLocation.List
	get        *ucLocation.Get
	update     *ucLocation.Update
	remove     *ucLocation.Remove
	setDefault *ucLocation.SetDefault
}

func NewLocationHandler(
	create *ucLocation.Create,
	list *ucLocation.List,
	get *ucLocation.Get,
	update *ucLocation.Update,
	remove *ucLocation.Remove,
	setDefault *ucLocation.SetDefault,
) *LocationHandler {
	return &LocationHandler{
		create:     create,
		list:       list,
		get:        get,
		update:     update,
		remove:     remove,
		setDefault: setDefault,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateLocationRequest struct {
	Label     string   `json:"label" binding:"required,max=50"`
	Address   string   `json:"address" binding:"required,max=255"`
	Apartment *string  `json:"apartment" binding:"omitempty,max=50"`
	Floor     *string  `json:"floor" binding:"omitempty,max=20"`
	Building  *string  `json:"building" binding:"omitempty,max=100"`
	Landmark  *string  `json:"landmark" binding:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	IsDefault bool     `json:"isDefault"`
}

type UpdateLocationRequest struct {
	Label     *string  `json:"label" binding:"omitempty,min=1,max=50"`
	Address   *string  `json:"address" binding:"omitempty,min=1,max=255"`
	Apartment *string  `json:"apartment" binding:"omitempty,max=50"`
	Floor     *string  `json:"floor" binding:"omitempty,max=20"`
	Building  *string  `json:"building" binding:"omitempty,max=100"`
	Landmark  *string  `json:"landmark" binding:"omitempty,max=255"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	IsDefault *bool    `json:"isDefault"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *LocationHandler) Create(c *gin.Context) {
	var req CreateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	loc, err := h.create.Execute(c.Request.Context(), ucLocation.CreateInput{
		UserID:    middleware.CurrentUserID(c),
		Label:     req.Label,
		Address:   req.Address,
		Apartment: req.Apartment,
		Floor:     req.Floor,
		Building:  req.Building,
		Landmark:  req.Landmark,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, loc)
}

func (h *LocationHandler) List(c *gin.Context) {
	locs, err := h.list.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, locs)
}

func (h *LocationHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	loc, err := h.get.Execute(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, loc)
}

func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	loc, err := h.update.Execute(c.Request.Context(), middleware.CurrentUserID(c), id, locationdomain.Changes{
		Label:     req.Label,
		Address:   req.Address,
		Apartment: req.Apartment,
		Floor:     req.Floor,
		Building:  req.Building,
		Landmark:  req.Landmark,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, loc)
}

func (h *LocationHandler) Remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, httpresp.Message{Message: "Location deleted successfully"})
}

func (h *LocationHandler) SetDefault(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	loc, err := h.setDefault.Execute(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, loc)
}
