package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awaleed99/bite-back0/internal/httperr"
)

type Envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data"`
	Meta    httperr.Meta `json:"meta"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewPage builds the pagination block for one page of a total result set.
func NewPage[T any](items []T, page, limit int, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Page[T]{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    int64(page*limit) < total,
			HasPrev:    page > 1,
		},
	}
}

type Message struct {
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Data:    data,
		Meta:    httperr.NewMeta(c),
	})
}

func OK(c *gin.Context, data any) {
	Write(c, http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	Write(c, http.StatusCreated, data)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	OK(c, data)
}
