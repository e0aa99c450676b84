package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"apparel/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveLogged(t *testing.T, debug bool, path string, h echo.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e := echo.New()
	e.Use(m.Handle)
	e.GET(path, h)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

	return buf.String()
}

func TestLoggerMiddleware(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	missing := func(echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) }

	t.Run("failures are logged outside debug", func(t *testing.T) {
		out := serveLogged(t, false, "/orders/O-101", missing)

		assert.Contains(t, out, `"level":"WARN"`)
		assert.Contains(t, out, `"status":404`)
		assert.Contains(t, out, `"route":"/orders/O-101"`)
	})

	t.Run("success is quiet outside debug", func(t *testing.T) {
		assert.Empty(t, serveLogged(t, false, "/orders", ok))
	})

	t.Run("debug logs success", func(t *testing.T) {
		assert.Contains(t, serveLogged(t, true, "/orders", ok), `"level":"INFO"`)
	})

	t.Run("health checks are skipped", func(t *testing.T) {
		assert.Empty(t, serveLogged(t, true, "/health", ok))
	})
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, accessLevel(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, accessLevel(http.StatusConflict))
	assert.Equal(t, slog.LevelError, accessLevel(http.StatusBadGateway))
}
