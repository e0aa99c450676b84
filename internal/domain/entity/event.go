package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event published to the notification worker.
type EventType string

const (
	EventOTPIssued      EventType = "user.otp_issued"
	EventPasswordReset  EventType = "user.password_reset_requested"
	EventLogin          EventType = "user.login"
	EventLoginFailed    EventType = "user.login_failed"
	EventLogout         EventType = "user.logout"
	EventOrderPlaced    EventType = "order.placed"
	EventOrderPaid      EventType = "order.paid"
	EventOrderTracking  EventType = "order.tracking_updated"
	EventOrderCancelled EventType = "order.cancelled"
	EventDesignReady    EventType = "design.ready"
)

// Event is the message carried on the event bus.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Type       EventType         `json:"type"`
	UserID     uuid.UUID         `json:"user_id"`
	OrderCode  string            `json:"order_code,omitempty"`
	DesignCode string            `json:"design_code,omitempty"`
	Status     string            `json:"status,omitempty"`
	Tracking   string            `json:"tracking,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"` // Free-form values such as an OTP or reset link.
	RequestID  string            `json:"request_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// NewEvent creates an event stamped with a fresh ID and time.
func NewEvent(eventType EventType, userID uuid.UUID, now time.Time) *Event {
	return &Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: now,
	}
}

// MessageAttributes returns the transport attributes used for filtering and tracing.
func (e *Event) MessageAttributes() map[string]string {
	attrs := map[string]string{
		"event_id":   e.ID.String(),
		"event_type": string(e.Type),
		"user_id":    e.UserID.String(),
	}
	if e.RequestID != "" {
		attrs["request_id"] = e.RequestID
	}

	return attrs
}
