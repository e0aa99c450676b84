package handler

import (
	"net/http"

	"apparel/internal/delivery/api/response"
	"apparel/internal/domain/entity"
	"apparel/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves orders to their owners and order administration to staff.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

type PlaceOrderRequest struct {
	DesignID  string `json:"design_id" validate:"required,uuid"`
	AddressID string `json:"address_id" validate:"omitempty,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=10000"`
}

type UpdateTrackingRequest struct {
	Tracking string `json:"tracking" validate:"required,oneof=placed packed transit delivery delivered"`
}

type ScanOrderRequest struct {
	Data string `json:"data" validate:"required,max=2048"`
}

// RepriceRequest optionally replaces the discount before recomputing totals.
type RepriceRequest struct {
	Discount *string `json:"discount" validate:"omitempty,numeric"`
}

type CancelOrderResponse struct {
	Order            *OrderResponse `json:"order"`
	AlreadyCancelled bool           `json:"already_cancelled"`
}

// PlaceOrder orders one of the caller's draft designs.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PlaceOrderRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	designID, err := optionalUUID(req.DesignID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := optionalUUID(req.AddressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:       userID,
		DesignID:     *designID,
		AddressID:    addressID,
		Quantity:     req.Quantity,
		RequireDraft: true,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}

// ListOrders lists the caller's orders, or every order for admins.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(orders, newOrderResponse))
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// CancelOrder is idempotent: cancelling twice answers 200 with already_cancelled set.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.orderUC.CancelOrder(c.Request().Context(), actor, c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CancelOrderResponse{
		Order:            newOrderResponse(output.Order),
		AlreadyCancelled: output.AlreadyCancelled,
	})
}

// TrackingQR returns a PNG QR code linking to the order's tracking page.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.TrackingQR(c.Request().Context(), actor, c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanOrder looks up the order behind a scanned packing-slip QR code.
func (h *OrderHandler) ScanOrder(c echo.Context) error {
	var req ScanOrderRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.ScanOrder(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) UpdateTracking(c echo.Context) error {
	var req UpdateTrackingRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.UpdateTracking(c.Request().Context(), c.Param("code"), entity.TrackingStatus(req.Tracking))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) MarkPaid(c echo.Context) error {
	order, err := h.orderUC.MarkPaid(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) Reprice(c echo.Context) error {
	var req RepriceRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	var discount *decimal.Decimal
	if req.Discount != nil {
		amount, err := parseAmount("discount", *req.Discount)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		discount = &amount
	}

	order, err := h.orderUC.Reprice(c.Request().Context(), c.Param("code"), discount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) ReactivateOrder(c echo.Context) error {
	order, err := h.orderUC.ReactivateOrder(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}
