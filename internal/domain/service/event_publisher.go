package service

import (
	"context"

	"apparel/internal/domain/entity"
)

// EventPublisher publishes domain events for asynchronous processing by the worker.
type EventPublisher interface {
	// Publish sends event to the bus.
	Publish(ctx context.Context, event *entity.Event) error

	// Close releases any resources held by the publisher
	Close() error
}
