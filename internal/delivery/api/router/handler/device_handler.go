package handler

import (
	"net/http"

	"apparel/internal/delivery/api/response"
	"apparel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler registers the mobile devices that receive order push notifications.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{deviceUC: params.DeviceUC}
}

type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,max=20"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice registers the device or refreshes its token when the same
// device ID was registered before.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterDeviceRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceRegistration{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDeviceResponse(device))
}

// GetUserDevices lists the caller's active devices.
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(devices, newDeviceResponse))
}

func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "FCM token updated successfully")
}

func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Device deactivated successfully")
}
