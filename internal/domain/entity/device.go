// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform values accepted for push devices.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
)

// UserDevice is a mobile device that receives order status pushes.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"` // Client-supplied installation identifier.
	Platform  string    `json:"platform"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
