package repository

import (
	"context"
	"errors"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. Zero values mean "any".
type OrderFilter struct {
	UserID     *uuid.UUID
	ActiveOnly bool
	Limit      int
}

// OrderRepository persists orders.
type OrderRepository interface {
	// CreateOrder persists a new order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByCode retrieves an order by its human-readable code.
	FindOrderByCode(ctx context.Context, code string) (*entity.Order, error)

	// FindOrderByCodeForUpdate retrieves an order and locks its row until the transaction ends.
	FindOrderByCodeForUpdate(ctx context.Context, code string) (*entity.Order, error)

	// FindOrders lists orders newest first.
	FindOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrder saves status, tracking, payment and amounts of an order.
	UpdateOrder(ctx context.Context, order *entity.Order) error
}
