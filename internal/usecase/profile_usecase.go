package usecase

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, upload *Upload) (*entity.User, error)
	UpdateNotificationSettings(ctx context.Context, userID uuid.UUID, input *UpdateNotificationSettingsInput) (*entity.NotificationSettings, error)

	// SetUserActive enables or disables an account. Admin only.
	SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput is a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Username  *string
	FullName  *string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Country   *string
}

// UpdateNotificationSettingsInput is a partial update of the opt-in flags.
type UpdateNotificationSettingsInput struct {
	OrderConfirmationEmail     *bool
	PaymentSuccessNotification *bool
	ShippingDeliveryUpdates    *bool
	AIDesignApprovalsAlerts    *bool
	AccountActivityAlerts      *bool
}

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
