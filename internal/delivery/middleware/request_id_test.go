package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "apparel/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"uuid", uuid.NewString(), true},
		{"opaque token", "req-42_abc.DEF", true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", maxRequestIDLength+1), false},
		{"contains space", "req 42", false},
		{"contains newline", "req\n42", false},
		{"non ascii", "req-é", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validRequestID(tt.id))
		})
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	e := echo.New()
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var seen string
	e.Use(m.Process)
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("keeps a well formed client ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-123", seen)
	})

	t.Run("replaces a malformed client ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\twith tabs")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, got, seen)
	})
}
