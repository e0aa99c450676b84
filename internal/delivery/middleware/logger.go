package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"apparel/config"
	deliverycontext "apparel/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Failures are
// always logged, successful requests only in debug mode.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths []string
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:    logger,
		debug:     config.Env.Debug,
		skipPaths: []string{"/health"},
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// The status is only known once the error handler has written it.
			c.Error(err)
		}

		req := c.Request()
		status := c.Response().Status
		if status < http.StatusBadRequest && (!m.debug || m.skipped(req.URL.Path)) {
			return nil
		}

		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
		logger.LogAttrs(req.Context(), accessLevel(status), "HTTP Request", accessAttrs(c, time.Since(start), err)...)

		return nil
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// accessAttrs leaves out request_id and user_id; the request logger has them.
func accessAttrs(c echo.Context, latency time.Duration, err error) []slog.Attr {
	req := c.Request()
	res := c.Response()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	return attrs
}

func (m *LoggerMiddleware) skipped(path string) bool {
	for _, p := range m.skipPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}

	return false
}
