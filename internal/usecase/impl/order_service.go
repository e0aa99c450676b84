package impl

import (
	"context"
	"log/slog"
	"time"

	"apparel/config"
	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/identifier"
	"apparel/internal/domain/orderstatus"
	"apparel/internal/domain/pricing"
	"apparel/internal/domain/repository"
	"apparel/internal/domain/service"
	"apparel/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager     repository.TransactionManager
	orderRepo     repository.OrderRepository
	publisher     service.EventPublisher
	qrCodeService service.QRCodeService
	shippingFee   decimal.Decimal
	deliveryDays  int
	logger        *slog.Logger
	now           func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:     params.TxManager,
		orderRepo:     params.OrderRepo,
		publisher:     params.Publisher,
		qrCodeService: params.QRCodeService,
		shippingFee:   pricing.DefaultShippingFee,
		deliveryDays:  5,
		logger:        params.Logger,
		now:           time.Now,
	}

	if params.Config != nil && params.Config.Pricing != nil {
		fee, err := decimal.NewFromString(params.Config.Pricing.DefaultShippingFee)
		if err != nil || fee.IsNegative() {
			params.Logger.Warn("Invalid default shipping fee, using built-in default",
				slog.String("value", params.Config.Pricing.DefaultShippingFee))
		} else {
			srv.shippingFee = fee
		}
		if params.Config.Pricing.EstimatedDeliveryDays > 0 {
			srv.deliveryDays = params.Config.Pricing.EstimatedDeliveryDays
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder prices a design, snapshots the shipping address and stores the order.
// When the design is still a draft it is submitted in the same transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Placing order", slog.Any("userID", input.UserID), slog.Any("designID", input.DesignID))

	if input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity cannot be negative")
	}

	var placed *entity.Order
	err := executeWithIdentifierRetry(ctx, srv.txManager, srv.log(ctx), func(repoFactory repository.RepositoryFactory) error {
		order, err := srv.placeOrder(ctx, repoFactory, input)
		if err != nil {
			return err
		}
		placed = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.Any("designID", input.DesignID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed", slog.String("orderCode", placed.Code), slog.String("total", placed.Total.StringFixed(2)))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(entity.EventOrderPlaced, placed, srv.now()))

	return placed, nil
}

func (srv *orderService) placeOrder(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	input *usecase.PlaceOrderInput,
) (*entity.Order, error) {
	designRepo := repoFactory.NewDesignRepository()

	design, err := designRepo.FindDesignByIDForUpdate(ctx, input.DesignID)
	if err != nil {
		if errors.Is(err, repository.ErrDesignNotFound) {
			return nil, domainerrors.ErrDesignNotFound
		}

		return nil, errors.Wrap(err, "failed to load design")
	}
	if design.UserID != input.UserID {
		return nil, domainerrors.ErrDesignNotFound
	}
	if input.RequireDraft && !design.IsDraft {
		return nil, domainerrors.ErrDesignNotDraft
	}

	rule, err := repoFactory.NewPricingRuleRepository().FindByProductID(ctx, design.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrPricingRuleNotFound) {
			return nil, domainerrors.ErrPricingRuleMissing.WithDetails("product of design " + design.Code)
		}

		return nil, errors.Wrap(err, "failed to load pricing rule")
	}

	address, err := srv.shippingAddress(ctx, repoFactory.NewAddressRepository(), input)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = design.Quantity
	}

	now := srv.now()
	order := &entity.Order{
		UserID:                input.UserID,
		DesignID:              design.ID,
		ProductID:             design.ProductID,
		DesignType:            design.DesignType,
		ShippingAddress:       address.Snapshot(),
		Quantity:              quantity,
		PaymentStatus:         entity.PaymentUnpaid,
		Tracking:              entity.TrackingPlaced,
		Discount:              input.Discount,
		ShippingFee:           srv.shippingFee,
		EstimatedDeliveryDate: now.AddDate(0, 0, srv.deliveryDays),
		IsActive:              true,
	}
	if err := pricing.Apply(order, rule); err != nil {
		return nil, errors.Wrap(err, "failed to price order")
	}
	orderstatus.Sync(order)

	code, err := repoFactory.NewIdentifierRepository().Allocate(ctx, identifier.PrefixOrder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate order code")
	}
	order.Code = code

	if err := repoFactory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	if design.IsDraft {
		design.IsDraft = false
		design.Quantity = quantity
		if err := designRepo.UpdateDesign(ctx, design); err != nil {
			return nil, errors.Wrap(err, "failed to submit design")
		}
	}

	return order, nil
}

// shippingAddress resolves the address an order ships to: the requested one,
// or the user's default shipping address.
func (srv *orderService) shippingAddress(
	ctx context.Context,
	addressRepo repository.AddressRepository,
	input *usecase.PlaceOrderInput,
) (*entity.Address, error) {
	if input.AddressID != nil {
		address, err := addressRepo.FindAddressByID(ctx, *input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return nil, domainerrors.ErrAddressNotFound
			}

			return nil, errors.Wrap(err, "failed to load shipping address")
		}
		if address.UserID != input.UserID {
			return nil, domainerrors.ErrAddressOwnershipViolation
		}
		if address.Kind != entity.AddressKindShipping {
			return nil, domainerrors.ErrShippingAddressRequired.WithDetails("address " + address.Code + " is a billing address")
		}

		return address, nil
	}

	address, err := addressRepo.FindDefaultAddress(ctx, input.UserID, entity.AddressKindShipping)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrShippingAddressRequired
		}

		return nil, errors.Wrap(err, "failed to load default shipping address")
	}

	return address, nil
}

// ListOrders returns every order to admins and their own orders to customers.
func (srv *orderService) ListOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	filter := repository.OrderFilter{}
	if !actor.IsAdmin {
		filter.UserID = &actor.UserID
	}

	orders, err := srv.orderRepo.FindOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns an order visible to actor.
func (srv *orderService) GetOrder(ctx context.Context, actor usecase.Actor, orderCode string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByCode(ctx, orderCode)
	if err != nil {
		return nil, translateOrderError(err)
	}
	if err := authorizeOrder(actor, order); err != nil {
		return nil, err
	}

	return order, nil
}

// CancelOrder cancels an order on behalf of its owner or an admin.
func (srv *orderService) CancelOrder(ctx context.Context, actor usecase.Actor, orderCode string) (*usecase.CancelOrderOutput, error) {
	srv.log(ctx).Info("Cancelling order", slog.String("orderCode", orderCode), slog.Any("userID", actor.UserID))

	var (
		cancelled        *entity.Order
		alreadyCancelled bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByCodeForUpdate(ctx, orderCode)
		if err != nil {
			return translateOrderError(err)
		}
		if err := authorizeOrder(actor, order); err != nil {
			return err
		}

		alreadyCancelled, err = orderstatus.Cancel(order, srv.now())
		if err != nil {
			return err
		}
		cancelled = order
		if alreadyCancelled {
			return nil
		}

		return orderRepo.UpdateOrder(ctx, order)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to cancel order")
	}

	if !alreadyCancelled {
		publishEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(entity.EventOrderCancelled, cancelled, srv.now()))
	}

	return &usecase.CancelOrderOutput{Order: cancelled, AlreadyCancelled: alreadyCancelled}, nil
}

// TrackingQR renders the tracking QR code of an order visible to actor.
func (srv *orderService) TrackingQR(ctx context.Context, actor usecase.Actor, orderCode string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, actor, orderCode)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateOrderQR(order.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

func (srv *orderService) ScanOrder(ctx context.Context, qrData string) (*entity.Order, error) {
	code, err := srv.qrCodeService.ParseOrderQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return srv.GetOrder(ctx, usecase.Actor{IsAdmin: true}, code)
}

// UpdateTracking records shipment progress. A cancelled order keeps its
// status; the tracking value is still stored.
func (srv *orderService) UpdateTracking(ctx context.Context, orderCode string, tracking entity.TrackingStatus) (*entity.Order, error) {
	order, err := srv.mutateOrder(ctx, orderCode, func(_ repository.RepositoryFactory, order *entity.Order) (bool, error) {
		if err := orderstatus.Track(order, tracking); err != nil {
			return false, err
		}

		return true, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update tracking")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(entity.EventOrderTracking, order, srv.now()))

	return order, nil
}

// MarkPaid records payment of an order. Marking a paid order again is a no-op.
func (srv *orderService) MarkPaid(ctx context.Context, orderCode string) (*entity.Order, error) {
	var changed bool
	order, err := srv.mutateOrder(ctx, orderCode, func(_ repository.RepositoryFactory, order *entity.Order) (bool, error) {
		if order.PaymentStatus == entity.PaymentPaid {
			return false, nil
		}
		order.PaymentStatus = entity.PaymentPaid
		orderstatus.Sync(order)
		changed = true

		return true, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark order paid")
	}

	if changed {
		publishEvent(ctx, srv.publisher, srv.log(ctx), newOrderEvent(entity.EventOrderPaid, order, srv.now()))
	}

	return order, nil
}

// Reprice re-runs pricing against the product's current rule. A nil discount
// keeps the stored one, so repricing unchanged inputs is idempotent.
func (srv *orderService) Reprice(ctx context.Context, orderCode string, discount *decimal.Decimal) (*entity.Order, error) {
	order, err := srv.mutateOrder(ctx, orderCode, func(repoFactory repository.RepositoryFactory, order *entity.Order) (bool, error) {
		rule, err := repoFactory.NewPricingRuleRepository().FindByProductID(ctx, order.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrPricingRuleNotFound) {
				return false, domainerrors.ErrPricingRuleMissing.WithDetails("product of order " + order.Code)
			}

			return false, errors.Wrap(err, "failed to load pricing rule")
		}

		if discount != nil {
			order.Discount = *discount
		}
		if err := pricing.Apply(order, rule); err != nil {
			return false, err
		}
		orderstatus.Sync(order)

		return true, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reprice order")
	}

	return order, nil
}

// ReactivateOrder lifts a cancellation.
func (srv *orderService) ReactivateOrder(ctx context.Context, orderCode string) (*entity.Order, error) {
	order, err := srv.mutateOrder(ctx, orderCode, func(_ repository.RepositoryFactory, order *entity.Order) (bool, error) {
		if err := orderstatus.Reactivate(order); err != nil {
			return false, err
		}

		return true, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reactivate order")
	}

	return order, nil
}

// mutateOrder locks an order, applies fn and saves the order when fn reports a change.
func (srv *orderService) mutateOrder(
	ctx context.Context,
	orderCode string,
	fn func(repoFactory repository.RepositoryFactory, order *entity.Order) (bool, error),
) (*entity.Order, error) {
	var result *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByCodeForUpdate(ctx, orderCode)
		if err != nil {
			return translateOrderError(err)
		}

		changed, err := fn(repoFactory, order)
		if err != nil {
			return err
		}
		if changed {
			if err := orderRepo.UpdateOrder(ctx, order); err != nil {
				return errors.Wrap(err, "failed to save order")
			}
		}
		result = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order update failed", slog.String("orderCode", orderCode), slog.Any("error", err))

		return nil, err
	}

	return result, nil
}

func authorizeOrder(actor usecase.Actor, order *entity.Order) error {
	if actor.IsAdmin || order.UserID == actor.UserID {
		return nil
	}

	return errors.Wrap(domainerrors.ErrForbidden, "order does not belong to user")
}

func translateOrderError(err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	return errors.Wrap(err, "failed to load order")
}
