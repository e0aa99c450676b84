package postgres

import (
	"context"
	"time"

	"apparel/internal/domain/entity"
	"apparel/internal/domain/repository"
	"apparel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// dashboardRepository answers aggregate queries; reads may be served by a replica.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository is the constructor for dashboardRepository.
func NewDashboardRepository(db *gorm.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (repo *dashboardRepository) SumActiveOrderTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return repo.sumTotals(repo.orders(ctx).
		Where("status <> ? AND created_at >= ? AND created_at < ?", string(entity.OrderStatusCancelled), from, to))
}

func (repo *dashboardRepository) SumCompletedOrderTotals(ctx context.Context) (decimal.Decimal, error) {
	return repo.sumTotals(repo.orders(ctx).Where("status = ?", string(entity.OrderStatusCompleted)))
}

func (repo *dashboardRepository) SumRevenueSince(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	query := repo.orders(ctx).Where("status <> ?", string(entity.OrderStatusCancelled))
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	return repo.sumTotals(query)
}

func (repo *dashboardRepository) CountActiveOrders(ctx context.Context) (int64, error) {
	return count(repo.orders(ctx).Where("status <> ?", string(entity.OrderStatusCancelled)))
}

func (repo *dashboardRepository) CountCancelledOrders(ctx context.Context) (int64, error) {
	return count(repo.orders(ctx).Where("status = ?", string(entity.OrderStatusCancelled)))
}

func (repo *dashboardRepository) CountDesignsSince(ctx context.Context, since time.Time) (int64, error) {
	return count(repo.db.WithContext(ctx).Model(&model.UserDesignModel{}).Where("created_at >= ?", since))
}

func (repo *dashboardRepository) CountCustomersSince(ctx context.Context, since time.Time) (int64, error) {
	return count(repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("role = ? AND created_at >= ?", string(entity.RoleUser), since))
}

func (repo *dashboardRepository) orders(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.OrderModel{})
}

func (repo *dashboardRepository) sumTotals(query *gorm.DB) (decimal.Decimal, error) {
	var row struct {
		Total decimal.NullDecimal
	}
	if err := query.Select("SUM(total) AS total").Scan(&row).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum order totals")
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}

	return row.Total.Decimal, nil
}

func count(query *gorm.DB) (int64, error) {
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rows")
	}

	return n, nil
}
