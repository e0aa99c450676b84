// Package orderstatus keeps an order's coarse status in step with its
// tracking progress. Cancellation is the only status set directly, and it is
// sticky: tracking changes never move a cancelled order back to processing.
package orderstatus

import (
	"fmt"
	"time"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
)

// Derive returns the status order should have given its tracking.
func Derive(order entity.Order) entity.OrderStatus {
	switch {
	case order.Status == entity.OrderStatusCancelled:
		return entity.OrderStatusCancelled
	case order.Tracking == entity.TrackingDelivered:
		return entity.OrderStatusCompleted
	default:
		return entity.OrderStatusProcessing
	}
}

// Sync applies Derive to order. Every write path calls it before persisting.
func Sync(order *entity.Order) {
	order.Status = Derive(*order)
}

// Track records new tracking progress and re-derives the status.
func Track(order *entity.Order, tracking entity.TrackingStatus) error {
	if !tracking.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown tracking status %q", tracking))
	}

	order.Tracking = tracking
	Sync(order)

	return nil
}

// Cancel marks order cancelled and inactive. Cancelling twice is not an
// error: alreadyCancelled reports that nothing changed.
func Cancel(order *entity.Order, now time.Time) (alreadyCancelled bool, err error) {
	if order.IsCancelled() {
		return true, nil
	}
	if order.Status == entity.OrderStatusCompleted || order.Tracking == entity.TrackingDelivered {
		return false, domainerrors.ErrOrderAlreadyCompleted
	}

	order.Status = entity.OrderStatusCancelled
	order.IsActive = false
	order.CancelledAt = &now

	return false, nil
}

// Reactivate lifts a cancellation and re-derives the status from tracking.
func Reactivate(order *entity.Order) error {
	if !order.IsCancelled() {
		return domainerrors.ErrOrderNotCancelled
	}

	order.Status = entity.OrderStatusProcessing
	order.IsActive = true
	order.CancelledAt = nil
	Sync(order)

	return nil
}
