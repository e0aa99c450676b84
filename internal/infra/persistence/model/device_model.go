package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel maps user_devices: one row per app installation of a user.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_devices_user_device,priority:1"`
	DeviceID  string    `gorm:"size:255;not null;uniqueIndex:uq_user_devices_user_device,priority:2"`
	FCMToken  string    `gorm:"column:fcm_token;size:255;not null"`
	Platform  string    `gorm:"size:50;not null;check:platform IN ('ios','android')"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}

// DeviceConflictColumns is the natural key of a registration.
var DeviceConflictColumns = []string{"user_id", "device_id"}

// DeviceRefreshColumns are overwritten when an installation registers again.
var DeviceRefreshColumns = []string{"fcm_token", "platform", "is_active", "updated_at"}
