package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awaleed99/bite-back0/internal/audit"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/httpresp"
	"github.com/awaleed99/bite-back0/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

// NewAuditLogsHandler interprets from/to dates as calendar days in tz.
func NewAuditLogsHandler(logs *audit.Logger, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: timezone.Location(tz)}
}

type AuditLogsQuery struct {
	Action string `form:"action" binding:"omitempty,max=50"`
	Entity string `form:"entity" binding:"omitempty,max=50"`
	UserID string `form:"userId" binding:"omitempty,uuid"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page   string `form:"page"`
	Limit  string `form:"limit"`
}

// List is admin only. Dates are whole days; bad page or limit values fall
// back to defaults.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var q AuditLogsQuery
	if !bindQuery(c, &q) {
		return
	}

	page := intOr(q.Page, 1)
	if page <= 0 {
		page = 1
	}
	limit := intOr(q.Limit, auditDefaultLimit)
	if limit <= 0 || limit > auditMaxLimit {
		limit = auditDefaultLimit
	}

	f := audit.Filter{Action: q.Action, Entity: q.Entity, Page: page, Limit: limit}
	// formats were checked by the binding tags
	if id, err := uuid.Parse(q.UserID); err == nil {
		f.UserID = &id
	}
	f.From = h.day(q.From)
	f.To = h.day(q.To)

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, httpresp.NewPage(logs, page, limit, total))
}

func (h *AuditLogsHandler) day(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := timezone.StartOfDay(s, h.loc)
	if err != nil {
		return nil
	}
	return &t
}
