package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the coarse lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// TrackingStatus is fine-grained shipment progress.
type TrackingStatus string

const (
	TrackingPlaced    TrackingStatus = "placed"
	TrackingPacked    TrackingStatus = "packed"
	TrackingTransit   TrackingStatus = "transit"
	TrackingDelivery  TrackingStatus = "delivery"
	TrackingDelivered TrackingStatus = "delivered"
)

// IsValid checks if the TrackingStatus is a valid value.
func (t TrackingStatus) IsValid() bool {
	switch t {
	case TrackingPlaced, TrackingPacked, TrackingTransit, TrackingDelivery, TrackingDelivered:
		return true
	default:
		return false
	}
}

// PaymentStatus records whether the order has been paid.
type PaymentStatus string

const (
	PaymentPaid   PaymentStatus = "Paid"
	PaymentUnpaid PaymentStatus = "Unpaid"
)

// Order is a placed purchase of a design.
type Order struct {
	ID                    uuid.UUID       // The Global Unique Identifier (GUID) for the order.
	Code                  string          // Human-readable identifier, e.g. "O-101".
	UserID                uuid.UUID       // The customer.
	DesignID              uuid.UUID       // The design being produced.
	ProductID             uuid.UUID       // Product of the design at placement time.
	DesignType            DesignType      // Design type at placement time, decides the add-on cost.
	ShippingAddress       AddressSnapshot // Copy of the shipping address used for this order.
	Quantity              int
	PaymentStatus         PaymentStatus
	Status                OrderStatus    // Derived from Tracking except for cancellation.
	Tracking              TrackingStatus // Shipment progress.
	Subtotal              decimal.Decimal
	Discount              decimal.Decimal
	ShippingFee           decimal.Decimal
	Total                 decimal.Decimal // Always Subtotal - Discount + ShippingFee.
	EstimatedDeliveryDate time.Time
	IsActive              bool       // False once cancelled.
	CancelledAt           *time.Time // Set when the order was cancelled.
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsCancelled reports whether the order has been cancelled.
func (o *Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}
