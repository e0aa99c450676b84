package impl

import (
	"context"
	"strings"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = domainerrors.ErrNotFound.WithDetails("device not found")
	// ErrDeviceUnauthorized is returned when a user tries to access a device they don't own
	ErrDeviceUnauthorized = domainerrors.ErrForbidden.WithDetails("unauthorized to access this device")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a device. The repository upserts on (user, device_id),
// so re-registering an installation refreshes its token and reactivates it.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, reg *usecase.DeviceRegistration) (*entity.UserDevice, error) {
	if strings.TrimSpace(reg.FCMToken) == "" || strings.TrimSpace(reg.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}

	platform, ok := reg.NormalizedPlatform()
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios or android")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: reg.FCMToken,
		DeviceID: reg.DeviceID,
		Platform: platform,
		IsActive: true,
	}

	if err := s.deviceRepo.SaveDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.findOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice stops pushes to a device
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.findOwned(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

func (s *deviceService) findOwned(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, ErrDeviceUnauthorized
	}

	return device, nil
}
