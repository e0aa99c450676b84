// Package errors holds the errors use cases return to the delivery layer.
// Each carries the HTTP status and the stable code clients switch on.
package errors

import (
	"net/http"

	"apparel/internal/errors"
)

// AppError is any error that knows how it should be rendered to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string // optional, never shown on 5xx/401/403
}

// BaseError is the common AppError. Values are immutable; WithDetails
// returns a copy.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is compares error codes, so errors derived through WithDetails still
// match the predefined value under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

// WrapMessage adds server-side context while keeping the client-facing
// code and message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Accounts.
var (
	ErrUserNotFound       = define(http.StatusNotFound, "USER_NOT_FOUND", "user not found")
	ErrUserAlreadyExists  = define(http.StatusConflict, "USER_ALREADY_EXISTS", "email is already registered")
	ErrUserCreationFailed = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "failed to create user")
	ErrUserInactive       = define(http.StatusForbidden, "USER_INACTIVE", "account is not active, verify your email first")
	ErrUserAlreadyActive  = define(http.StatusConflict, "USER_ALREADY_ACTIVE", "account is already verified")
	ErrConsentRequired    = define(http.StatusBadRequest, "CONSENT_REQUIRED", "terms must be accepted to register")
	ErrPasswordMismatch   = define(http.StatusBadRequest, "PASSWORD_MISMATCH", "passwords do not match")
)

// Authentication.
var (
	ErrInvalidCredentials   = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrOTPInvalid           = define(http.StatusForbidden, "OTP_INVALID", "otp either invalid or expired")
	ErrResetTokenInvalid    = define(http.StatusBadRequest, "RESET_TOKEN_INVALID", "invalid or expired password reset token")
	ErrRefreshTokenInvalid  = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "invalid or expired refresh token")
	ErrPasswordHashFailed   = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "failed to process password")
	ErrPasswordStrength     = define(http.StatusBadRequest, "PASSWORD_STRENGTH", "password is too weak")
	ErrSessionLimitExceeded = define(http.StatusTooManyRequests, "SESSION_LIMIT_EXCEEDED", "maximum number of active sessions reached")
)

// Catalog and pricing.
var (
	ErrProductNotFound    = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "apparel product not found")
	ErrProductInactive    = define(http.StatusConflict, "PRODUCT_INACTIVE", "apparel product is not available")
	ErrPricingRuleMissing = define(http.StatusUnprocessableEntity, "PRICING_RULE_MISSING", "configuration missing: no pricing rule for product")
	ErrInvalidSize        = define(http.StatusBadRequest, "INVALID_SIZE", "size is not available for this product")
)

var (
	ErrDesignNotFound = define(http.StatusNotFound, "DESIGN_NOT_FOUND", "design not found")
	ErrDesignNotDraft = define(http.StatusConflict, "DESIGN_NOT_DRAFT", "design has already been submitted")
)

var (
	ErrAddressNotFound           = define(http.StatusNotFound, "ADDRESS_NOT_FOUND", "address not found")
	ErrDefaultAddressRequired    = define(http.StatusConflict, "DEFAULT_ADDRESS_REQUIRED", "another address must be made default first")
	ErrShippingAddressRequired   = define(http.StatusBadRequest, "SHIPPING_ADDRESS_REQUIRED", "a shipping address is required to place an order")
	ErrAddressOwnershipViolation = define(http.StatusForbidden, "ADDRESS_OWNERSHIP_VIOLATION", "you do not have permission to access this address")
)

// Orders.
var (
	ErrOrderNotFound         = define(http.StatusNotFound, "ORDER_NOT_FOUND", "order not found")
	ErrOrderAlreadyCompleted = define(http.StatusConflict, "ORDER_ALREADY_COMPLETED", "delivered orders cannot be cancelled")
	ErrOrderNotCancelled     = define(http.StatusConflict, "ORDER_NOT_CANCELLED", "order is not cancelled")
	// ErrIdentifierExhausted means every retry collided; the client may try again.
	ErrIdentifierExhausted = define(http.StatusServiceUnavailable, "IDENTIFIER_EXHAUSTED", "could not allocate a unique identifier, please retry")
)

// Generic errors, usually specialised with WithDetails.
var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrUnauthenticated  = define(http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")
	ErrForbidden        = define(http.StatusForbidden, "FORBIDDEN", "access denied")
	ErrNotFound         = define(http.StatusNotFound, "NOT_FOUND", "resource not found")
	ErrConflict         = define(http.StatusConflict, "CONFLICT", "resource conflict")
)

// DatabaseExecuteError hides a driver error behind a generic 500 while
// keeping it reachable through errors.Unwrap for logging.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
