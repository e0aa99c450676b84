package main

import (
	"context"
	"log/slog"
	"os"

	"apparel/config"
	"apparel/internal/delivery"
	"apparel/internal/delivery/api"
	"apparel/internal/delivery/api/middleware"
	"apparel/internal/delivery/api/router/handler"
	"apparel/internal/domain/service"
	"apparel/internal/errors"
	"apparel/internal/infra/auth"
	logs "apparel/internal/infra/log"
	"apparel/internal/infra/persistence/postgres"
	"apparel/internal/infra/pubsub"
	"apparel/internal/infra/qrcode"
	"apparel/internal/infra/storage"
	"apparel/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newDBPinger,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewAddressRepository,
			postgres.NewProductRepository,
			postgres.NewPricingRuleRepository,
			postgres.NewDesignRepository,
			postgres.NewOrderRepository,
			postgres.NewDashboardRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSecretGenerator,
			pubsub.NewEventPublisher,
			storage.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService builds the tracking QR generator from cfg.QRCode, which
// config.New always fills with defaults.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newDBPinger exposes the primary connection pool to the health check.
func newDBPinger(db *gorm.DB) (handler.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewAddressService,
			impl.NewDesignService,
			impl.NewOrderService,
			impl.NewDashboardService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewAddressHandler,
			handler.NewDesignHandler,
			handler.NewOrderHandler,
			handler.NewDashboardHandler,
			handler.NewDeviceHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
