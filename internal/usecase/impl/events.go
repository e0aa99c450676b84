package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	"apparel/internal/domain/service"
)

// publishEvent hands event to the bus after the write that caused it has
// committed. Delivery is best effort: a failure is logged, never returned.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.Event) {
	if publisher == nil || event == nil {
		return
	}
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish event",
			slog.String("eventType", string(event.Type)),
			slog.Any("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}

func newOrderEvent(eventType entity.EventType, order *entity.Order, now time.Time) *entity.Event {
	event := entity.NewEvent(eventType, order.UserID, now)
	event.OrderCode = order.Code
	event.Status = string(order.Status)
	event.Tracking = string(order.Tracking)

	return event
}
