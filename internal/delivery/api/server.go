package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"apparel/config"
	"apparel/internal/delivery"
	apimiddleware "apparel/internal/delivery/api/middleware"
	"apparel/internal/delivery/api/router"
	"apparel/internal/delivery/api/validator"
	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/delivery/middleware"
	"apparel/internal/domain/lifecycle"
	"apparel/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the customer and admin HTTP API. The listener is opened
// by Serve, shutdown is tied to the fx lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// newEcho configures everything except routes. The request ID middleware
// runs before the access log so every log line can carry it.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
			XSSProtection:      "0",
			ContentTypeNosniff: "nosniff",
			XFrameOptions:      "DENY",
		}),
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:  allowedOrigins(cfg),
			AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
			ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
		}),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// allowedOrigins is the storefront only; without one configured CORS stays open
// for local development.
func allowedOrigins(cfg *config.Config) []string {
	if cfg.Frontend == nil || cfg.Frontend.BaseURL == "" {
		return []string{"*"}
	}

	return []string{cfg.Frontend.BaseURL}
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting apparel API server", slog.String("host_port", hostPort))

	h2s := &http2.Server{IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout}
	if err := s.echo.StartH2CServer(hostPort, h2s); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down apparel API server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
