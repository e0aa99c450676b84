package handler

import (
	"net/http"
	"strconv"
	"time"

	"apparel/internal/delivery/api/response"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// maxRecentOrders caps the limit query parameter of RecentOrders.
const maxRecentOrders = 100

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
}

// DashboardHandler serves the admin dashboard.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	now         func() time.Time
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		now:         time.Now,
	}
}

func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.dashboardUC.Summary(c.Request().Context(), h.now().UTC())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// Revenue accepts ?filter=1M|3M|6M|1Y and defaults to 1M; any other value
// reports all time.
func (h *DashboardHandler) Revenue(c echo.Context) error {
	filter := entity.RevenueFilter(c.QueryParam("filter"))
	if filter == "" {
		filter = entity.RevenueOneMonth
	}

	output, err := h.dashboardUC.Revenue(c.Request().Context(), filter, h.now().UTC())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"filter":  string(output.Filter),
		"revenue": money(output.Revenue),
	})
}

func (h *DashboardHandler) RecentOrders(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxRecentOrders {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("limit must be between 1 and 100"))
		}
		limit = n
	}

	orders, err := h.dashboardUC.RecentOrders(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(orders, newOrderResponse))
}
