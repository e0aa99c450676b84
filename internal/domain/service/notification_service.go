package service

import (
	"context"
)

// PushMessage is the content of one mobile push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushReport tallies a fan-out. StaleTokens lists tokens the provider no
// longer accepts; their devices should be deactivated.
type PushReport struct {
	Delivered   int
	Failed      int
	StaleTokens []string
}

// NotificationService delivers push notifications to registered devices.
type NotificationService interface {
	Push(ctx context.Context, tokens []string, msg PushMessage) (*PushReport, error)
}
