package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID             uuid.UUID               `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code           string                  `gorm:"type:varchar(32);not null;uniqueIndex"`
	Username       string                  `gorm:"type:varchar(150);not null"`
	Email          string                  `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string                  `gorm:"type:varchar(32)"`
	Role           string                  `gorm:"type:varchar(20);not null;default:'user'"`
	Consent        bool                    `gorm:"not null;default:false"`
	IsActive       bool                    `gorm:"not null;default:false"`
	FullName       string                  `gorm:"type:varchar(255)"`
	FirstName      string                  `gorm:"type:varchar(150)"`
	LastName       string                  `gorm:"type:varchar(150)"`
	Country        string                  `gorm:"type:varchar(100)"`
	ProfilePicture string                  `gorm:"type:text"`
	Notifications  NotificationSettingsDoc `gorm:"type:jsonb;serializer:json;not null"`
	OTP            string                  `gorm:"type:varchar(16)"`
	OTPExpiresAt   *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// NotificationSettingsDoc is the JSON document stored in users.notifications.
type NotificationSettingsDoc struct {
	OrderConfirmationEmail     bool `json:"order_confirmation_email"`
	PaymentSuccessNotification bool `json:"payment_success_notification"`
	ShippingDeliveryUpdates    bool `json:"shipping_delivery_updates"`
	AIDesignApprovalsAlerts    bool `json:"ai_design_approvals_alerts"`
	AccountActivityAlerts      bool `json:"account_activity_alerts"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
