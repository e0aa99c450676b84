package handler

import (
	"log/slog"
	"net/http"

	"apparel/internal/delivery/api/response"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, e-mail verification, sessions and passwords.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for opening an account.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"omitempty,phone"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Consent         bool   `json:"consent"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ConfirmPasswordResetRequest struct {
	UserID          string `json:"user_id" validate:"required,uuid"`
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

// Register opens an inactive account and mails a verification code.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Consent:         req.Consent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User))
}

func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req EmailRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Verification code sent")
}

func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.authUC.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserResponse(output.User),
	})
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Logged out successfully")
}

// RequestPasswordReset always answers 202 so the endpoint cannot be used to
// discover which e-mails are registered.
func (h *AuthHandler) RequestPasswordReset(c echo.Context) error {
	var req EmailRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusAccepted, "If the account exists, a reset link has been sent")
}

func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req ConfirmPasswordResetRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.authUC.ConfirmPasswordReset(c.Request().Context(), &usecase.PasswordResetInput{
		UserID:          uuid.MustParse(req.UserID),
		Token:           req.Token,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password has been reset")
}

// ChangePassword changes the password of the logged in user.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ChangePasswordRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	err = h.authUC.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Password changed")
}
