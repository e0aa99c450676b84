package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	apimiddleware "apparel/internal/delivery/api/middleware"
	"apparel/internal/delivery/api/validator"
	"apparel/internal/delivery/middleware"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/service"
	mockService "apparel/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

// apiFixture is an echo instance wired like the real server, with bearer
// tokens resolved by a mocked token service.
type apiFixture struct {
	e       *echo.Echo
	authed  *echo.Group
	admin   *echo.Group
	userID  uuid.UUID
	adminID uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &apiFixture{
		e:       echo.New(),
		userID:  uuid.New(),
		adminID: uuid.New(),
	}

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(userToken).Return(&service.Claims{
		UserID: fx.userID,
		Roles:  []string{entity.RoleUser.String()},
		Type:   service.TokenTypeAccess,
	}, nil).Maybe()
	tokens.EXPECT().ValidateToken(adminToken).Return(&service.Claims{
		UserID: fx.adminID,
		Roles:  []string{entity.RoleAdmin.String()},
		Type:   service.TokenTypeAccess,
	}, nil).Maybe()

	fx.e.Validator = validator.New()
	fx.e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	fx.e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	auth := apimiddleware.NewAuthMiddleware(tokens)
	fx.authed = fx.e.Group("", auth.Authenticate)
	fx.admin = fx.e.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	return fx
}

func (fx *apiFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return fx.serve(req)
}

func (fx *apiFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}

	return env
}

func errorCode(appErr *domainerrors.BaseError) string {
	return appErr.ErrorCode()
}
