package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	"apparel/internal/domain/repository"
	"apparel/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRecentOrders = 5

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	orderRepo     repository.OrderRepository
	logger        *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	DashboardRepo repository.DashboardRepository
	OrderRepo     repository.OrderRepository
	Logger        *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		dashboardRepo: params.DashboardRepo,
		orderRepo:     params.OrderRepo,
		logger:        params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Summary reports the current calendar month as seen from now.
func (srv *dashboardService) Summary(ctx context.Context, now time.Time) (*entity.DashboardSummary, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	summary := &entity.DashboardSummary{}
	var err error

	if summary.MonthlyRevenue, err = srv.dashboardRepo.SumActiveOrderTotals(ctx, monthStart, monthEnd); err != nil {
		return nil, errors.Wrap(err, "failed to sum monthly revenue")
	}
	if summary.NewDesigns, err = srv.dashboardRepo.CountDesignsSince(ctx, monthStart); err != nil {
		return nil, errors.Wrap(err, "failed to count new designs")
	}
	if summary.ActiveOrders, err = srv.dashboardRepo.CountActiveOrders(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count active orders")
	}
	if summary.PaymentsReceived, err = srv.dashboardRepo.SumCompletedOrderTotals(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to sum payments received")
	}
	if summary.NewCustomers, err = srv.dashboardRepo.CountCustomersSince(ctx, monthStart); err != nil {
		return nil, errors.Wrap(err, "failed to count new customers")
	}
	if summary.CancelledOrders, err = srv.dashboardRepo.CountCancelledOrders(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to count cancelled orders")
	}

	srv.log(ctx).Debug("Dashboard summary computed", slog.Time("monthStart", monthStart))

	return summary, nil
}

// Revenue sums non-cancelled orders inside the filter's window. Unknown
// filters report all-time revenue.
func (srv *dashboardService) Revenue(ctx context.Context, filter entity.RevenueFilter, now time.Time) (*usecase.RevenueOutput, error) {
	var since *time.Time
	if days := filter.WindowDays(); days > 0 {
		start := now.AddDate(0, 0, -days)
		since = &start
	}

	revenue, err := srv.dashboardRepo.SumRevenueSince(ctx, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	return &usecase.RevenueOutput{Filter: filter, Revenue: revenue}, nil
}

// RecentOrders returns the newest active orders.
func (srv *dashboardService) RecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultRecentOrders
	}

	orders, err := srv.orderRepo.FindOrders(ctx, repository.OrderFilter{ActiveOnly: true, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent orders")
	}

	return orders, nil
}
