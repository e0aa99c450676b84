package handler

import (
	"net/http"

	"apparel/internal/delivery/api/response"
	"apparel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the logged in user's own account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest is a partial update; absent fields are left unchanged.
type UpdateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=50"`
	FullName  *string `json:"full_name" validate:"omitempty,max=100"`
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Country   *string `json:"country" validate:"omitempty,max=60"`
}

type UpdateNotificationSettingsRequest struct {
	OrderConfirmationEmail     *bool `json:"order_confirmation_email"`
	PaymentSuccessNotification *bool `json:"payment_success_notification"`
	ShippingDeliveryUpdates    *bool `json:"shipping_delivery_updates"`
	AIDesignApprovalsAlerts    *bool `json:"ai_design_approvals_alerts"`
	AccountActivityAlerts      *bool `json:"account_activity_alerts"`
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Username:  req.Username,
		FullName:  req.FullName,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Country:   req.Country,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UploadProfilePicture expects a multipart form with a "picture" file.
func (h *ProfileHandler) UploadProfilePicture(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	upload, err := formUpload(c, "picture")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.UploadProfilePicture(c.Request().Context(), userID, upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

func (h *ProfileHandler) UpdateNotificationSettings(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateNotificationSettingsRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	settings, err := h.profileUC.UpdateNotificationSettings(c.Request().Context(), userID, &usecase.UpdateNotificationSettingsInput{
		OrderConfirmationEmail:     req.OrderConfirmationEmail,
		PaymentSuccessNotification: req.PaymentSuccessNotification,
		ShippingDeliveryUpdates:    req.ShippingDeliveryUpdates,
		AIDesignApprovalsAlerts:    req.AIDesignApprovalsAlerts,
		AccountActivityAlerts:      req.AccountActivityAlerts,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// SetUserActive lets an admin enable or disable any account.
func (h *ProfileHandler) SetUserActive(c echo.Context) error {
	userID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetActiveRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.profileUC.SetUserActive(c.Request().Context(), userID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
