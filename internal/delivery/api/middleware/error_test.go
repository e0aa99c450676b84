package middleware_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"apparel/internal/delivery/api/middleware"
	domainerrors "apparel/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	e := echo.New()
	m := middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders", nil), rec)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1"), "place order"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "quantity must be at least 1", body.Error.Details)
}

func TestErrorMiddleware_ForbiddenHidesDetails(t *testing.T) {
	rec, body := handleError(t, domainerrors.ErrForbidden.WithDetails("order belongs to another customer"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	e := echo.New()
	m := middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.String(http.StatusOK, "done"))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, "done", rec.Body.String())
}
