// Package response writes the JSON envelope shared by every API endpoint:
// {"data": ...} or {"error": {...}}, always with meta.request_id.
package response

import (
	"net/http"

	deliverycontext "apparel/internal/delivery/context"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every API response. Exactly one of Data and
// Error is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "ORDER_NOT_FOUND"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id"`
}

// MessageBody is the payload of endpoints that only acknowledge an action.
type MessageBody struct {
	Message string `json:"message"`
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{Data: data, Meta: meta(c)})
}

// Message acknowledges an action with a human readable message.
func Message(c echo.Context, statusCode int, message string) error {
	return Success(c, statusCode, MessageBody{Message: message})
}

// Error writes an error envelope. Details never leave the server on 5xx,
// 401 or 403 responses.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if redacted(statusCode) {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// HandleAppError writes domain errors as their HTTP equivalent. Any other
// error is returned to echo so the centralized handler logs it as a 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func redacted(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}
