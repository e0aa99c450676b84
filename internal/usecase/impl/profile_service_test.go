package impl

import (
	"context"
	"strings"
	"testing"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"
	mockRepo "apparel/internal/mocks/repository"
	mockService "apparel/internal/mocks/service"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	userRepo    *mockRepo.MockUserRepository
	objectStore *mockService.MockObjectStore
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	objectStore := mockService.NewMockObjectStore(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			UserRepo:    userRepo,
			ObjectStore: objectStore,
			Logger:      newDiscardLogger(),
		}),
		userRepo:    userRepo,
		objectStore: objectStore,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, Email: "ada@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Username: "ada", Email: "ada@example.com", Country: "UK"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "countess@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.FullName == "Ada Lovelace" && u.Email == "countess@example.com"
	})).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		FullName: strPtr("  Ada Lovelace "),
		Email:    strPtr("Countess@Example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", user.FullName)
	assert.Equal(t, "ada", user.Username, "absent fields are left unchanged")
	assert.Equal(t, "UK", user.Country)
}

func TestProfileService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "ada@example.com"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "grace@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Email: strPtr("grace@example.com")})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestProfileService_UpdateProfile_EmptyEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "ada@example.com"}, nil)

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Email: strPtr("  ")})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UploadProfilePicture(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, ProfilePicture: "profiles/old.jpg"}
	prefix := "profiles/" + userID.String() + "/"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.objectStore.EXPECT().
		Put(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, prefix) && strings.HasSuffix(key, ".png")
		}), "image/png", []byte("png")).
		RunAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			return key, nil
		})
	fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)
	fx.objectStore.EXPECT().Delete(ctx, "profiles/old.jpg").Return(errors.New("bucket unavailable"))

	user, err := fx.service.UploadProfilePicture(ctx, userID, &usecase.Upload{
		Filename:    "Me.PNG",
		ContentType: "image/png",
		Data:        []byte("png"),
	})

	require.NoError(t, err, "a stale picture that cannot be removed is only logged")
	assert.True(t, strings.HasPrefix(user.ProfilePicture, prefix))
}

func TestProfileService_UploadProfilePicture_UpdateFails(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.objectStore.EXPECT().Put(ctx, mock.Anything, "image/jpeg", mock.Anything).Return("profiles/new.jpg", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("connection reset"))
	fx.objectStore.EXPECT().Delete(ctx, "profiles/new.jpg").Return(nil)

	user, err := fx.service.UploadProfilePicture(ctx, userID, &usecase.Upload{
		Filename:    "me.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpg"),
	})

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "failed to update profile picture")
}

func TestProfileService_UploadProfilePicture_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		upload *usecase.Upload
	}{
		{"nil upload", nil},
		{"empty data", &usecase.Upload{Filename: "a.png", ContentType: "image/png"}},
		{"not an image", &usecase.Upload{Filename: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.UploadProfilePicture(context.Background(), uuid.New(), tt.upload)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProfileService_UpdateNotificationSettings(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Notifications: entity.NotificationSettings{
		OrderConfirmationEmail:  true,
		ShippingDeliveryUpdates: true,
	}}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)

	settings, err := fx.service.UpdateNotificationSettings(ctx, userID, &usecase.UpdateNotificationSettingsInput{
		OrderConfirmationEmail:  boolPtr(false),
		AIDesignApprovalsAlerts: boolPtr(true),
	})

	require.NoError(t, err)
	assert.False(t, settings.OrderConfirmationEmail)
	assert.True(t, settings.AIDesignApprovalsAlerts)
	assert.True(t, settings.ShippingDeliveryUpdates, "absent flags are left unchanged")
}

func TestProfileService_SetUserActive(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Code: "U-101", OTP: "123456"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)

	user, err := fx.service.SetUserActive(ctx, userID, true)

	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.OTP, "manual activation discards a pending code")
}
