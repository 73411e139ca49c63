package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awaleed99/bite-back0/internal/httpresp"
)

const (
	healthTimeout = 2 * time.Second
	apiVersion    = "1.0.0"
)

// Check pings one dependency.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks  map[string]Check
	started time.Time
}

func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, started: time.Now()}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Uptime    float64           `json:"uptime"`
	Checks    map[string]string `json:"checks"`
}

// Health answers 503 when any dependency is down.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.started).Seconds(),
		Checks:    make(map[string]string, len(h.checks)),
	}

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			resp.Checks[name] = "down"
			resp.Status = "degraded"
			continue
		}
		resp.Checks[name] = "up"
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	httpresp.Write(c, status, resp)
}

func (h *HealthHandler) Info(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"name":    "Bite Back API",
		"version": apiVersion,
		"health":  "/health",
		"api":     "/api/v1",
	})
}
