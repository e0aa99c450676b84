package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"
	"apparel/internal/domain/service"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	objectStore service.ObjectStore
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ObjectStore service.ObjectStore
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		objectStore: params.ObjectStore,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateUserError(err)
	}

	return user, nil
}

// UpdateProfile applies the fields present in input.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	assign(&user.Username, input.Username)
	assign(&user.FullName, input.FullName)
	assign(&user.FirstName, input.FirstName)
	assign(&user.LastName, input.LastName)
	assign(&user.Phone, input.Phone)
	assign(&user.Country, input.Country)

	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("email cannot be empty")
		}
		if email != user.Email {
			if existing, err := srv.userRepo.FindByEmail(ctx, email); err == nil && existing.ID != user.ID {
				return nil, domainerrors.ErrUserAlreadyExists
			}
			user.Email = email
		}
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// UploadProfilePicture stores the picture and points the profile at it.
// The previous picture is removed once the profile is saved.
func (srv *profileService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, upload *usecase.Upload) (*entity.User, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("picture is empty")
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("picture must be an image")
	}

	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("profiles/%s/%s%s", userID, uuid.NewString(), strings.ToLower(path.Ext(upload.Filename)))
	stored, err := srv.objectStore.Put(ctx, key, upload.ContentType, upload.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store profile picture")
	}

	previous := user.ProfilePicture
	user.ProfilePicture = stored

	if err := srv.userRepo.Update(ctx, user); err != nil {
		_ = srv.objectStore.Delete(ctx, stored)

		return nil, errors.Wrap(err, "failed to update profile picture")
	}

	if previous != "" {
		if err := srv.objectStore.Delete(ctx, previous); err != nil {
			srv.log(ctx).Warn("Failed to delete previous profile picture", slog.String("key", previous), slog.Any("error", err))
		}
	}

	return user, nil
}

// UpdateNotificationSettings flips the opt-in flags present in input.
func (srv *profileService) UpdateNotificationSettings(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.UpdateNotificationSettingsInput,
) (*entity.NotificationSettings, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings := &user.Notifications
	assign := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	assign(&settings.OrderConfirmationEmail, input.OrderConfirmationEmail)
	assign(&settings.PaymentSuccessNotification, input.PaymentSuccessNotification)
	assign(&settings.ShippingDeliveryUpdates, input.ShippingDeliveryUpdates)
	assign(&settings.AIDesignApprovalsAlerts, input.AIDesignApprovalsAlerts)
	assign(&settings.AccountActivityAlerts, input.AccountActivityAlerts)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update notification settings")
	}

	return settings, nil
}

// SetUserActive enables or disables an account.
func (srv *profileService) SetUserActive(ctx context.Context, userID uuid.UUID, active bool) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsActive = active
	if active {
		user.OTP = ""
		user.OTPExpiresAt = nil
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user status")
	}

	srv.log(ctx).Info("User status changed", slog.String("code", user.Code), slog.Bool("active", active))

	return user, nil
}
