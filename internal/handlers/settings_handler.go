package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/awaleed99/bite-back0/internal/domain/user"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/middleware"
	ucUser "github.com/awaleed99/bite-back0/internal/usecase/user"
)

type SettingsHandler struct {
	get    *ucUser.GetSettings
	update *ucUser.UpdateSettings
}

func NewSettingsHandler(get *ucUser.GetSettings, update *ucUser.UpdateSettings) *SettingsHandler {
	return &SettingsHandler{get: get, update: update}
}

type UpdateNotificationSettingsRequest struct {
	PushNotifications *bool `json:"pushNotifications"`
	SMSNotifications  *bool `json:"smsNotifications"`
	PromotionalEmails *bool `json:"promotionalEmails"`
	OrderUpdates      *bool `json:"orderUpdates"`
}

func (h *SettingsHandler) GetNotifications(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *SettingsHandler) UpdateNotifications(c *gin.Context) {
	var req UpdateNotificationSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.update.Execute(c.Request.Context(), middleware.CurrentUserID(c), userdomain.SettingsChanges{
		PushNotifications: req.PushNotifications,
		SMSNotifications:  req.SMSNotifications,
		PromotionalEmails: req.PromotionalEmails,
		OrderUpdates:      req.OrderUpdates,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}
