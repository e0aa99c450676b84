package handler_test

import (
	"net/http"
	"testing"

	"apparel/internal/delivery/api/router/handler"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	mockUsecase "apparel/internal/mocks/usecase"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthAPI(t *testing.T) (*apiFixture, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	fx := newAPIFixture(t)
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: nil})

	fx.e.POST("/auth/register", h.Register)
	fx.e.POST("/auth/otp/verify", h.VerifyOTP)
	fx.e.POST("/auth/login", h.Login)
	fx.e.POST("/auth/password/reset-request", h.RequestPasswordReset)
	fx.e.POST("/auth/password/reset", h.ConfirmPasswordReset)
	fx.authed.POST("/me/password", h.ChangePassword)

	return fx, authUC
}

func TestAuthHandler_Register(t *testing.T) {
	fx, authUC := newAuthAPI(t)

	user := &entity.User{
		ID:       uuid.New(),
		Code:     "U-101",
		Username: "ada",
		Email:    "ada@example.com",
		Role:     entity.RoleUser,
		OTP:      "123456",
	}
	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username:        "ada",
			Email:           "ada@example.com",
			Phone:           "+44 20 7946 0958",
			Password:        "s3cret-pass",
			ConfirmPassword: "s3cret-pass",
			Consent:         true,
		}).
		Return(&usecase.RegisterOutput{User: user}, nil)

	rec := fx.do(http.MethodPost, "/auth/register", "", map[string]any{
		"username":         "ada",
		"email":            "ada@example.com",
		"phone":            "+44 20 7946 0958",
		"password":         "s3cret-pass",
		"confirm_password": "s3cret-pass",
		"consent":          true,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "123456", "the pending code is only ever mailed")

	var body handler.UserResponse
	decode(t, rec, &body)
	assert.Equal(t, "U-101", body.Code)
	assert.False(t, body.IsActive)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	fx, _ := newAuthAPI(t)

	rec := fx.do(http.MethodPost, "/auth/register", "", map[string]any{
		"username": "ad",
		"email":    "not-an-email",
		"phone":    "call me",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details, _ := decode(t, rec, nil).Error.Details.(string)
	assert.Contains(t, details, "username must be at least 3")
	assert.Contains(t, details, "email must be a valid e-mail address")
	assert.Contains(t, details, "phone must be a valid phone number")
	assert.Contains(t, details, "password is required")
}

func TestAuthHandler_VerifyOTP_RejectsMalformedCode(t *testing.T) {
	fx, _ := newAuthAPI(t)

	rec := fx.do(http.MethodPost, "/auth/otp/verify", "", map[string]any{"email": "ada@example.com", "otp": "12ab56"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	fx, authUC := newAuthAPI(t)

	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "pw"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         &entity.User{ID: uuid.New(), Email: "ada@example.com", IsActive: true},
		}, nil)

	rec := fx.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "ada@example.com", "password": "pw"})

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.LoginResponse
	decode(t, rec, &body)
	assert.Equal(t, "access", body.AccessToken)
	assert.Equal(t, "refresh", body.RefreshToken)
	assert.True(t, body.User.IsActive)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	fx, authUC := newAuthAPI(t)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := fx.do(http.MethodPost, "/auth/login", "", map[string]any{"email": "ada@example.com", "password": "bad"})

	assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)
	assert.Equal(t, errorCode(domainerrors.ErrInvalidCredentials), decode(t, rec, nil).Error.Code)
}

func TestAuthHandler_RequestPasswordReset(t *testing.T) {
	fx, authUC := newAuthAPI(t)

	authUC.EXPECT().RequestPasswordReset(mock.Anything, "nobody@example.com").Return(nil)

	rec := fx.do(http.MethodPost, "/auth/password/reset-request", "", map[string]any{"email": "nobody@example.com"})

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAuthHandler_ConfirmPasswordReset(t *testing.T) {
	fx, authUC := newAuthAPI(t)

	userID := uuid.New()
	authUC.EXPECT().ConfirmPasswordReset(mock.Anything, &usecase.PasswordResetInput{
		UserID:          userID,
		Token:           "reset-token",
		NewPassword:     "n3w-password",
		ConfirmPassword: "n3w-password",
	}).Return(domainerrors.ErrResetTokenInvalid)

	rec := fx.do(http.MethodPost, "/auth/password/reset", "", map[string]any{
		"user_id":          userID.String(),
		"token":            "reset-token",
		"new_password":     "n3w-password",
		"confirm_password": "n3w-password",
	})

	assert.Equal(t, domainerrors.ErrResetTokenInvalid.HTTPCode(), rec.Code)
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	fx, authUC := newAuthAPI(t)

	authUC.EXPECT().ChangePassword(mock.Anything, fx.userID, &usecase.ChangePasswordInput{
		OldPassword:     "old-password",
		NewPassword:     "n3w-password",
		ConfirmPassword: "n3w-password",
	}).Return(nil)

	rec := fx.do(http.MethodPost, "/me/password", userToken, map[string]any{
		"old_password":     "old-password",
		"new_password":     "n3w-password",
		"confirm_password": "n3w-password",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
