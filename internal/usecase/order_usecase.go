package usecase

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceOrderInput describes a new order for one of the user's designs.
type PlaceOrderInput struct {
	UserID    uuid.UUID
	DesignID  uuid.UUID
	AddressID *uuid.UUID // nil selects the user's default shipping address.
	Quantity  int        // Zero takes the design's quantity.
	Discount  decimal.Decimal

	// RequireDraft rejects designs that have already been submitted.
	RequireDraft bool
}

// Actor identifies who is calling an order operation.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// CancelOrderOutput reports the cancelled order and whether it was cancelled before.
type CancelOrderOutput struct {
	Order            *entity.Order
	AlreadyCancelled bool
}

// OrderUsecase places orders and drives their status.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)
	GetOrder(ctx context.Context, actor Actor, orderCode string) (*entity.Order, error)
	CancelOrder(ctx context.Context, actor Actor, orderCode string) (*CancelOrderOutput, error)
	TrackingQR(ctx context.Context, actor Actor, orderCode string) ([]byte, error)

	// Admin operations.
	UpdateTracking(ctx context.Context, orderCode string, tracking entity.TrackingStatus) (*entity.Order, error)
	MarkPaid(ctx context.Context, orderCode string) (*entity.Order, error)
	Reprice(ctx context.Context, orderCode string, discount *decimal.Decimal) (*entity.Order, error)
	ReactivateOrder(ctx context.Context, orderCode string) (*entity.Order, error)
	// ScanOrder resolves the content of a scanned packing-slip QR code.
	ScanOrder(ctx context.Context, qrData string) (*entity.Order, error)
}
