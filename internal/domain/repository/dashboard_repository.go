package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository answers the aggregate queries of the admin dashboard.
type DashboardRepository interface {
	// SumActiveOrderTotals sums totals of active orders created in [from, to).
	SumActiveOrderTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumCompletedOrderTotals sums totals of completed orders.
	SumCompletedOrderTotals(ctx context.Context) (decimal.Decimal, error)

	// SumRevenueSince sums totals of non-cancelled orders created at or after since; nil means all time.
	SumRevenueSince(ctx context.Context, since *time.Time) (decimal.Decimal, error)

	// CountActiveOrders counts orders that have not been cancelled.
	CountActiveOrders(ctx context.Context) (int64, error)

	// CountCancelledOrders counts cancelled orders.
	CountCancelledOrders(ctx context.Context) (int64, error)

	// CountDesignsSince counts designs created at or after since.
	CountDesignsSince(ctx context.Context, since time.Time) (int64, error)

	// CountCustomersSince counts non-staff users created at or after since.
	CountCustomersSince(ctx context.Context, since time.Time) (int64, error)
}
