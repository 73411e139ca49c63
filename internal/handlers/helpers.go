package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderdomain "github.com/awaleed99/bite-back0/internal/domain/order"
	"github.com/awaleed99/bite-back0/internal/httperr"
	"github.com/awaleed99/bite-back0/internal/middleware"
)

// bindJSON binds the body into dst and answers with a validation envelope on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.BindError(c, err)
		return false
	}
	return true
}

// uuidParam parses a path parameter as a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_id", "Invalid "+name).
			WithDetails([]httperr.FieldError{{Field: name, Rule: "uuid"}}))
		return uuid.Nil, false
	}
	return id, true
}

func actorOf(c *gin.Context) orderdomain.Actor {
	p := middleware.CurrentPrincipal(c)
	if p == nil {
		return orderdomain.Actor{}
	}
	return orderdomain.Actor{ID: p.ID, Email: p.Email, Role: p.Role}
}

func intOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
