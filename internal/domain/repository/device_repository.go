package repository

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets of each user.
type DeviceRepository interface {
	// SaveDevice upserts on (UserID, DeviceID) and reloads device with the
	// stored row, so a re-registration gets back its original ID.
	SaveDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	// FindDevicesByUser lists newest first; activeOnly skips deactivated ones.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error
	// DeactivateDevice keeps the row; the worker calls it for tokens FCM rejects.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error
}
