package handler

import (
	"context"
	"net/http"
	"time"

	"apparel/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler answers the load balancer health check.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports 503 while the database is unreachable.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "database is unreachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
