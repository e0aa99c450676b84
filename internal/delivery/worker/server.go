package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"apparel/config"
	"apparel/internal/delivery"
	"apparel/internal/delivery/middleware"
	"apparel/internal/delivery/worker/handler"
	"apparel/internal/domain/lifecycle"
	"apparel/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const readinessTimeout = 2 * time.Second

// Pinger is the database the worker reads recipients and devices from.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type workerServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	DB          Pinger
	PushHandler *handler.PushHandler
}

// NewServer creates the notification worker. Pub/Sub pushes events to
// POST /push; GET /health fails while the database is unreachable so the
// platform stops routing pushes that would only be redelivered.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)
	registerRoutes(e, params.PushHandler.HandlePush, params.DB)

	srv := &workerServer{
		port:   params.Cfg.Worker.Port,
		logger: params.Logger,
		echo:   e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

func registerRoutes(e *echo.Echo, push echo.HandlerFunc, db Pinger) {
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", push)
}

func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting notification worker", slog.String("host_port", hostPort))
	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notification worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
