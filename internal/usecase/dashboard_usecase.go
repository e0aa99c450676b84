package usecase

import (
	"context"
	"time"

	"apparel/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// RevenueOutput is the revenue for one look-back window.
type RevenueOutput struct {
	Filter  entity.RevenueFilter `json:"filter"`
	Revenue decimal.Decimal      `json:"revenue"`
}

// DashboardUsecase answers the admin dashboard.
type DashboardUsecase interface {
	Summary(ctx context.Context, now time.Time) (*entity.DashboardSummary, error)
	Revenue(ctx context.Context, filter entity.RevenueFilter, now time.Time) (*RevenueOutput, error)
	RecentOrders(ctx context.Context, limit int) ([]*entity.Order, error)
}
