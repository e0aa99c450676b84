package usecase

import (
	"context"
	"strings"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a mobile client sends after obtaining an FCM token.
type DeviceRegistration struct {
	FCMToken string
	DeviceID string // stable per app installation
	Platform string // ios or android, any case
}

// NormalizedPlatform lower-cases Platform and reports whether it is one push
// can target.
func (r *DeviceRegistration) NormalizedPlatform() (string, bool) {
	platform := strings.ToLower(strings.TrimSpace(r.Platform))

	return platform, platform == entity.PlatformIOS || platform == entity.PlatformAndroid
}

// DeviceUsecase keeps the push targets of a customer. Every operation on an
// existing device checks that the caller owns it.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per (user, DeviceID): a second call
	// replaces the token and reactivates the device.
	RegisterDevice(ctx context.Context, userID uuid.UUID, reg *DeviceRegistration) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	// GetUserDevices lists active devices only.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
