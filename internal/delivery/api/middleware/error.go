package middleware

import (
	"log/slog"
	"net/http"

	"apparel/internal/delivery/api/response"
	deliverycontext "apparel/internal/delivery/context"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	codeHTTPError     = "HTTP_ERROR"
	codeInternalError = "INTERNAL_ERROR"
	genericFailure    = "Internal server error, please try again later"
)

// ErrorMiddleware is the API's echo.HTTPErrorHandler. Handlers return
// domain errors unchanged and this turns them into the error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// failure is what the client is told about an error.
type failure struct {
	status  int
	code    string
	message string
	details any
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f, known := describe(err)
	if !known || f.status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
	}

	_ = response.Error(c, f.status, f.code, f.message, f.details)
}

// describe maps err onto a client-facing failure. known is false for errors
// that carry no status of their own; those become an opaque 500.
func describe(err error) (f failure, known bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return failure{appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()}, true
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}

		return failure{status: httpErr.Code, code: codeHTTPError, message: msg}, true
	}

	return failure{status: http.StatusInternalServerError, code: codeInternalError, message: genericFailure}, false
}
