package handler_test

import (
	"net/http"
	"testing"

	"apparel/internal/delivery/api/router/handler"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	mockUsecase "apparel/internal/mocks/usecase"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderAPI(t *testing.T) (*apiFixture, *mockUsecase.MockOrderUsecase) {
	t.Helper()

	fx := newAPIFixture(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC})

	fx.authed.POST("/orders", h.PlaceOrder)
	fx.authed.GET("/orders", h.ListOrders)
	fx.authed.GET("/orders/:code", h.GetOrder)
	fx.authed.POST("/orders/:code/cancel", h.CancelOrder)
	fx.authed.GET("/orders/:code/qr", h.TrackingQR)
	fx.admin.POST("/orders/:code/reprice", h.Reprice)
	fx.admin.PATCH("/orders/:code/tracking", h.UpdateTracking)
	fx.admin.POST("/orders/scan", h.ScanOrder)

	return fx, orderUC
}

func sampleOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		Code:          "O-101",
		UserID:        userID,
		Quantity:      2,
		PaymentStatus: entity.PaymentUnpaid,
		Status:        entity.OrderStatusProcessing,
		Tracking:      entity.TrackingPlaced,
		Subtotal:      decimal.RequireFromString("50"),
		Discount:      decimal.Zero,
		ShippingFee:   decimal.RequireFromString("5"),
		Total:         decimal.RequireFromString("55"),
		IsActive:      true,
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	designID := uuid.New()
	orderUC.EXPECT().
		PlaceOrder(mock.Anything, mock.MatchedBy(func(in *usecase.PlaceOrderInput) bool {
			return in.UserID == fx.userID && in.DesignID == designID && in.AddressID == nil &&
				in.Quantity == 2 && in.RequireDraft && in.Discount.IsZero()
		})).
		Return(sampleOrder(fx.userID), nil)

	rec := fx.do(http.MethodPost, "/orders", userToken, map[string]any{
		"design_id": designID.String(),
		"quantity":  2,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body handler.OrderResponse
	env := decode(t, rec, &body)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, "O-101", body.Code)
	assert.Equal(t, "55.00", body.Total)
	assert.Equal(t, "5.00", body.ShippingFee)
}

func TestOrderHandler_PlaceOrder_Validation(t *testing.T) {
	fx, _ := newOrderAPI(t)

	rec := fx.do(http.MethodPost, "/orders", userToken, map[string]any{"quantity": -1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec, nil)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "design_id is required")
}

func TestOrderHandler_PlaceOrder_DomainError(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	orderUC.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPricingRuleMissing)

	rec := fx.do(http.MethodPost, "/orders", userToken, map[string]any{"design_id": uuid.NewString()})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, errorCode(domainerrors.ErrPricingRuleMissing), decode(t, rec, nil).Error.Code)
}

func TestOrderHandler_RequiresAuthentication(t *testing.T) {
	fx, _ := newOrderAPI(t)

	rec := fx.do(http.MethodGet, "/orders", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_GetOrder_PassesActor(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	orderUC.EXPECT().GetOrder(mock.Anything, usecase.Actor{UserID: fx.adminID, IsAdmin: true}, "O-101").
		Return(sampleOrder(uuid.New()), nil)

	rec := fx.do(http.MethodGet, "/orders/O-101", adminToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_CancelOrder_AlreadyCancelled(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	order := sampleOrder(fx.userID)
	order.Status = entity.OrderStatusCancelled
	order.IsActive = false
	orderUC.EXPECT().CancelOrder(mock.Anything, usecase.Actor{UserID: fx.userID}, "O-101").
		Return(&usecase.CancelOrderOutput{Order: order, AlreadyCancelled: true}, nil)

	rec := fx.do(http.MethodPost, "/orders/O-101/cancel", userToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body handler.CancelOrderResponse
	decode(t, rec, &body)
	assert.True(t, body.AlreadyCancelled)
	assert.Equal(t, entity.OrderStatusCancelled, body.Order.Status)
}

func TestOrderHandler_CancelOrder_Forbidden(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	orderUC.EXPECT().CancelOrder(mock.Anything, mock.Anything, "O-102").Return(nil, domainerrors.ErrForbidden)

	rec := fx.do(http.MethodPost, "/orders/O-102/cancel", userToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decode(t, rec, nil).Error.Details)
}

func TestOrderHandler_TrackingQR(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	png := []byte("\x89PNG")
	orderUC.EXPECT().TrackingQR(mock.Anything, usecase.Actor{UserID: fx.userID}, "O-101").Return(png, nil)

	rec := fx.do(http.MethodGet, "/orders/O-101/qr", userToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_Reprice(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	orderUC.EXPECT().
		Reprice(mock.Anything, "O-101", mock.MatchedBy(func(d *decimal.Decimal) bool {
			return d != nil && d.Equal(decimal.RequireFromString("7.5"))
		})).
		Return(sampleOrder(fx.userID), nil)

	rec := fx.do(http.MethodPost, "/admin/orders/O-101/reprice", adminToken, map[string]any{"discount": "7.5"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_Reprice_KeepsDiscountWhenAbsent(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	orderUC.EXPECT().Reprice(mock.Anything, "O-101", (*decimal.Decimal)(nil)).Return(sampleOrder(fx.userID), nil)

	rec := fx.do(http.MethodPost, "/admin/orders/O-101/reprice", adminToken, map[string]any{})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_AdminRoutesRejectCustomers(t *testing.T) {
	fx, _ := newOrderAPI(t)

	rec := fx.do(http.MethodPatch, "/admin/orders/O-101/tracking", userToken, map[string]any{"tracking": "packed"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, rec, nil).Error.Code)
}

func TestOrderHandler_UpdateTracking_RejectsUnknownStatus(t *testing.T) {
	fx, _ := newOrderAPI(t)

	rec := fx.do(http.MethodPatch, "/admin/orders/O-101/tracking", adminToken, map[string]any{"tracking": "lost"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_ScanOrder(t *testing.T) {
	fx, orderUC := newOrderAPI(t)

	orderUC.EXPECT().ScanOrder(mock.Anything, "https://shop.example.com/orders/O-101").Return(sampleOrder(fx.userID), nil)

	rec := fx.do(http.MethodPost, "/admin/orders/scan", adminToken, map[string]any{"data": "https://shop.example.com/orders/O-101"})

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodPost, "/admin/orders/scan", adminToken, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
