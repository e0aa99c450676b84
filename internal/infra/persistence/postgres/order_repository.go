package postgres

import (
	"context"
	"strings"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"
	"apparel/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) && strings.Contains(pgConstraintName(err), "code") {
			return repository.ErrDuplicateIdentifier
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDesignNotFound.WrapMessage("invalid design or user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order amounts violate constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByCode retrieves an order by its human-readable code.
func (repo *orderRepository) FindOrderByCode(ctx context.Context, code string) (*entity.Order, error) {
	return repo.findByCode(repo.db.WithContext(ctx), code)
}

// FindOrderByCodeForUpdate locks the order row on the primary until the transaction ends.
func (repo *orderRepository) FindOrderByCodeForUpdate(ctx context.Context, code string) (*entity.Order, error) {
	return repo.findByCode(repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}), code)
}

func (repo *orderRepository) findByCode(db *gorm.DB, code string) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := db.Where("code = ?", code).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by code")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrders lists orders newest first.
func (repo *orderRepository) FindOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, nil
}

// UpdateOrder saves status, tracking, payment and amounts of an order.
func (repo *orderRepository) UpdateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	result := repo.db.WithContext(ctx).Model(&model.OrderModel{ID: order.ID}).
		Select("payment_status", "status", "tracking", "subtotal", "discount", "shipping_fee", "total",
			"estimated_delivery_date", "is_active", "cancelled_at", "updated_at").
		Updates(orderM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("order amounts violate constraints")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                    data.ID,
		Code:                  data.Code,
		UserID:                data.UserID,
		DesignID:              data.DesignID,
		ProductID:             data.ProductID,
		DesignType:            entity.DesignType(data.DesignType),
		ShippingAddress:       entity.AddressSnapshot(data.ShippingAddress),
		Quantity:              data.Quantity,
		PaymentStatus:         entity.PaymentStatus(data.PaymentStatus),
		Status:                entity.OrderStatus(data.Status),
		Tracking:              entity.TrackingStatus(data.Tracking),
		Subtotal:              data.Subtotal,
		Discount:              data.Discount,
		ShippingFee:           data.ShippingFee,
		Total:                 data.Total,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		IsActive:              data.IsActive,
		CancelledAt:           data.CancelledAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:                    data.ID,
		Code:                  data.Code,
		UserID:                data.UserID,
		DesignID:              data.DesignID,
		ProductID:             data.ProductID,
		DesignType:            string(data.DesignType),
		ShippingAddress:       model.AddressSnapshotModel(data.ShippingAddress),
		Quantity:              data.Quantity,
		PaymentStatus:         string(data.PaymentStatus),
		Status:                string(data.Status),
		Tracking:              string(data.Tracking),
		Subtotal:              data.Subtotal,
		Discount:              data.Discount,
		ShippingFee:           data.ShippingFee,
		Total:                 data.Total,
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		IsActive:              data.IsActive,
		CancelledAt:           data.CancelledAt,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
