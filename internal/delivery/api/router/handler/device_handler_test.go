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
)

func TestDeviceHandler(t *testing.T) {
	fx := newAPIFixture(t)
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)
	h := handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: deviceUC})

	fx.authed.POST("/devices", h.RegisterDevice)
	fx.authed.PUT("/devices/:id/token", h.UpdateFCMToken)
	fx.authed.DELETE("/devices/:id", h.DeactivateDevice)

	t.Run("register", func(t *testing.T) {
		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, fx.userID, &usecase.DeviceRegistration{FCMToken: "fcm", DeviceID: "pixel-8", Platform: "android"}).
			Return(&entity.UserDevice{ID: uuid.New(), DeviceID: "pixel-8"}, nil).Once()

		rec := fx.do(http.MethodPost, "/devices", userToken, map[string]any{
			"fcm_token": "fcm",
			"device_id": "pixel-8",
			"platform":  "android",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("update token of a foreign device", func(t *testing.T) {
		deviceID := uuid.New()
		deviceUC.EXPECT().UpdateFCMToken(mock.Anything, fx.userID, deviceID, "fresh").Return(domainerrors.ErrForbidden).Once()

		rec := fx.do(http.MethodPut, "/devices/"+deviceID.String()+"/token", userToken, map[string]any{"fcm_token": "fresh"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("deactivate", func(t *testing.T) {
		deviceID := uuid.New()
		deviceUC.EXPECT().DeactivateDevice(mock.Anything, fx.userID, deviceID).Return(nil).Once()

		rec := fx.do(http.MethodDelete, "/devices/"+deviceID.String(), userToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
