// Package context carries per-request values (request ID, scoped logger,
// authenticated user) between the delivery layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	userIDKey
)

// HeaderXRequestID travels with API responses and is forwarded to the
// worker as an event attribute.
const HeaderXRequestID = "X-Request-Id"

// echo.Context store key for the request ID.
const echoRequestIDKey = "request_id"

// Scope attaches a request ID and a logger that already carries it. The
// API middleware and the worker both enter a request through here.
func Scope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return WithLogger(ctx, logger)
}

// GetRequestID returns the ID assigned by the request ID middleware. Outside
// that middleware (tests, early failures) a fresh ID is made up.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside a request scope.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}
