package impl

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/service"
	mockService "apparel/internal/mocks/service"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "Str0ng!pass"

type authFixture struct {
	store     *memStore
	publisher *recordingPublisher
	tokens    *mockService.MockTokenService
	srv       usecase.AuthUsecase
	clock     time.Time
}

func newAuthFixture(t *testing.T, maxActiveSessions int) *authFixture {
	t.Helper()

	store := newMemStore()
	publisher := &recordingPublisher{}
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	secrets := mockService.NewMockSecretGenerator(t)

	hasher.EXPECT().Hash(mock.Anything).RunAndReturn(func(password string) (string, error) {
		if len(password) < 8 {
			return "", domainerrors.ErrPasswordStrength
		}

		return "hash:" + password, nil
	}).Maybe()
	hasher.EXPECT().Check(mock.Anything, mock.Anything).RunAndReturn(func(password, hash string) bool {
		return hash == "hash:"+password
	}).Maybe()
	secrets.EXPECT().NewOTP(entity.OTPLength).Return("123456", nil).Maybe()
	secrets.EXPECT().NewToken().Return("reset-token", nil).Maybe()

	var issued atomic.Int64
	tokens.EXPECT().GenerateTokens(mock.Anything, []string{entity.RoleUser.String()}).
		RunAndReturn(func(uuid.UUID, []string) (string, string, error) {
			n := issued.Add(1)

			return fmt.Sprintf("access-%d", n), fmt.Sprintf("refresh-%d", n), nil
		}).Maybe()
	tokens.EXPECT().HashToken(mock.Anything).RunAndReturn(func(token string) string {
		return "sha:" + token
	}).Maybe()
	tokens.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour).Maybe()

	fx := &authFixture{
		store:     store,
		publisher: publisher,
		tokens:    tokens,
		clock:     fixedNow,
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:        store,
		UserRepo:         memUsers{store},
		AuthRepo:         memAuth{store},
		RefreshTokenRepo: memRefreshTokens{store},
		Hasher:           hasher,
		TokenService:     tokens,
		Secrets:          secrets,
		Publisher:        publisher,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})
	srv.(*authService).now = func() time.Time { return fx.clock }
	fx.srv = srv

	return fx
}

func registerInput(email string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:        "ada",
		Email:           email,
		Password:        testPassword,
		ConfirmPassword: testPassword,
		Consent:         true,
	}
}

// registerActive registers and verifies an account.
func (fx *authFixture) registerActive(t *testing.T, email string) *entity.User {
	t.Helper()

	_, err := fx.srv.Register(context.Background(), registerInput(email))
	require.NoError(t, err)

	user, err := fx.srv.VerifyOTP(context.Background(), email, "123456")
	require.NoError(t, err)

	return user
}

func (fx *authFixture) login(email, password string) (*usecase.LoginOutput, error) {
	return fx.srv.Login(context.Background(), &usecase.LoginInput{Email: email, Password: password})
}

func TestAuthService_Register(t *testing.T) {
	fx := newAuthFixture(t, 0)

	output, err := fx.srv.Register(context.Background(), registerInput("  Ada@Example.com "))
	require.NoError(t, err)

	user := output.User
	assert.Equal(t, "U-101", user.Code)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, entity.RoleUser, user.Role, "public registration never creates staff")
	assert.True(t, user.Consent)
	assert.False(t, user.IsActive, "accounts start unverified")
	require.NotNil(t, user.OTPExpiresAt)
	assert.Equal(t, fixedNow.Add(10*time.Minute), *user.OTPExpiresAt)

	credential, err := (memAuth{fx.store}).FindCredentialByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash:"+testPassword, credential.PasswordHash)

	event := fx.publisher.last()
	require.NotNil(t, event)
	assert.Equal(t, entity.EventOTPIssued, event.Type)
	assert.Equal(t, "123456", event.Attributes[AttrOTP])
	assert.Equal(t, "ada@example.com", event.Attributes[AttrEmail])
}

func TestAuthService_CreateAdmin(t *testing.T) {
	fx := newAuthFixture(t, 0)
	ctx := context.Background()

	admin, err := fx.srv.CreateAdmin(ctx, &usecase.CreateAdminInput{
		Username: "root",
		Email:    "Ops@Example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive, "admins skip e-mail verification")
	assert.Equal(t, "ops@example.com", admin.Email)
	assert.Equal(t, "U-101", admin.Code)
	assert.Nil(t, fx.publisher.last())

	credential, err := (memAuth{fx.store}).FindCredentialByUserID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash:"+testPassword, credential.PasswordHash)

	_, err = fx.srv.CreateAdmin(ctx, &usecase.CreateAdminInput{Username: "again", Email: "ops@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	_, err = fx.srv.CreateAdmin(ctx, &usecase.CreateAdminInput{Email: "x@example.com", Password: testPassword})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Register_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *usecase.RegisterInput)
		wantErr error
	}{
		{"without consent", func(in *usecase.RegisterInput) { in.Consent = false }, domainerrors.ErrConsentRequired},
		{"passwords differ", func(in *usecase.RegisterInput) { in.ConfirmPassword = "other" }, domainerrors.ErrPasswordMismatch},
		{"weak password", func(in *usecase.RegisterInput) { in.Password, in.ConfirmPassword = "short", "short" }, domainerrors.ErrPasswordStrength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAuthFixture(t, 0)
			input := registerInput("ada@example.com")
			tt.mutate(input)

			output, err := fx.srv.Register(context.Background(), input)

			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fx.store.users)
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		fx := newAuthFixture(t, 0)
		_, err := fx.srv.Register(context.Background(), registerInput("ada@example.com"))
		require.NoError(t, err)

		_, err = fx.srv.Register(context.Background(), registerInput("ADA@example.com"))
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
		assert.Len(t, fx.store.users, 1)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	t.Run("wrong code", func(t *testing.T) {
		fx := newAuthFixture(t, 0)
		_, err := fx.srv.Register(context.Background(), registerInput("ada@example.com"))
		require.NoError(t, err)

		_, err = fx.srv.VerifyOTP(context.Background(), "ada@example.com", "654321")
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})

	t.Run("expired code", func(t *testing.T) {
		fx := newAuthFixture(t, 0)
		_, err := fx.srv.Register(context.Background(), registerInput("ada@example.com"))
		require.NoError(t, err)

		fx.clock = fixedNow.Add(10*time.Minute + time.Second)

		_, err = fx.srv.VerifyOTP(context.Background(), "ada@example.com", "123456")
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)

		require.NoError(t, fx.srv.ResendOTP(context.Background(), "ada@example.com"))
		user, err := fx.srv.VerifyOTP(context.Background(), "ada@example.com", "123456")
		require.NoError(t, err, "a resent code restarts the expiry window")
		assert.True(t, user.IsActive)
	})

	t.Run("valid code activates once", func(t *testing.T) {
		fx := newAuthFixture(t, 0)
		_, err := fx.srv.Register(context.Background(), registerInput("ada@example.com"))
		require.NoError(t, err)

		fx.clock = fixedNow.Add(9 * time.Minute)
		user, err := fx.srv.VerifyOTP(context.Background(), "ada@example.com", " 123456 ")
		require.NoError(t, err)
		assert.True(t, user.IsActive)
		assert.Empty(t, user.OTP)
		assert.Nil(t, user.OTPExpiresAt)

		_, err = fx.srv.VerifyOTP(context.Background(), "ada@example.com", "123456")
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyActive)

		err = fx.srv.ResendOTP(context.Background(), "ada@example.com")
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyActive)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := newAuthFixture(t, 0)

		_, err := fx.srv.VerifyOTP(context.Background(), "nobody@example.com", "123456")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_Login(t *testing.T) {
	fx := newAuthFixture(t, 0)

	_, err := fx.srv.Register(context.Background(), registerInput("ada@example.com"))
	require.NoError(t, err)

	_, err = fx.login("ada@example.com", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrUserInactive, "unverified accounts cannot log in")

	_, err = fx.srv.VerifyOTP(context.Background(), "ada@example.com", "123456")
	require.NoError(t, err)

	_, err = fx.login("ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, entity.EventLoginFailed, fx.publisher.last().Type)

	_, err = fx.login("nobody@example.com", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	output, err := fx.login("ADA@example.com", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.NotEmpty(t, output.RefreshToken)
	assert.Equal(t, "ada@example.com", output.User.Email)
	assert.Equal(t, entity.EventLogin, fx.publisher.last().Type)

	session, err := (memRefreshTokens{fx.store}).FindRefreshTokenByHash(context.Background(), "sha:"+output.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(24*time.Hour), session.ExpiresAt)
}

func TestAuthService_Login_SessionLimit(t *testing.T) {
	fx := newAuthFixture(t, 2)
	fx.registerActive(t, "ada@example.com")

	for range 2 {
		_, err := fx.login("ada@example.com", testPassword)
		require.NoError(t, err)
	}

	_, err := fx.login("ada@example.com", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
	assert.Len(t, fx.store.refreshTokens, 2)
}

func TestAuthService_RefreshToken(t *testing.T) {
	fx := newAuthFixture(t, 0)
	user := fx.registerActive(t, "ada@example.com")

	login, err := fx.login("ada@example.com", testPassword)
	require.NoError(t, err)

	fx.tokens.EXPECT().ValidateToken(login.RefreshToken).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
	fx.tokens.EXPECT().ValidateToken(login.AccessToken).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeAccess}, nil)

	refreshed, err := fx.srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = fx.srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid, "access tokens cannot refresh")

	require.NoError(t, fx.srv.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: login.RefreshToken}))
	assert.Empty(t, fx.store.refreshTokens)

	_, err = fx.srv.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid, "ended sessions cannot refresh")
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("alerts the user", func(t *testing.T) {
		fx := newAuthFixture(t, 0)
		user := fx.registerActive(t, "ada@example.com")
		login, err := fx.login("ada@example.com", testPassword)
		require.NoError(t, err)

		fx.tokens.EXPECT().ValidateToken(login.RefreshToken).
			Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)

		require.NoError(t, fx.srv.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: login.RefreshToken}))

		event := fx.publisher.last()
		require.NotNil(t, event)
		assert.Equal(t, entity.EventLogout, event.Type)
		assert.Equal(t, user.ID, event.UserID)
		assert.Empty(t, fx.store.refreshTokens)
	})

	t.Run("expired token ends the session without an alert", func(t *testing.T) {
		fx := newAuthFixture(t, 0)
		fx.registerActive(t, "ada@example.com")
		login, err := fx.login("ada@example.com", testPassword)
		require.NoError(t, err)

		fx.tokens.EXPECT().ValidateToken(login.RefreshToken).Return(nil, domainerrors.ErrRefreshTokenInvalid)

		require.NoError(t, fx.srv.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: login.RefreshToken}))

		assert.Equal(t, entity.EventLogin, fx.publisher.last().Type)
		assert.Empty(t, fx.store.refreshTokens)
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	fx := newAuthFixture(t, 0)
	user := fx.registerActive(t, "ada@example.com")

	_, err := fx.login("ada@example.com", testPassword)
	require.NoError(t, err)

	require.NoError(t, fx.srv.RequestPasswordReset(context.Background(), "nobody@example.com"))
	assert.NotEqual(t, entity.EventPasswordReset, fx.publisher.last().Type, "unknown e-mails are ignored silently")

	require.NoError(t, fx.srv.RequestPasswordReset(context.Background(), "ada@example.com"))
	event := fx.publisher.last()
	assert.Equal(t, entity.EventPasswordReset, event.Type)
	assert.Equal(t, "https://shop.example.com/forgot/"+user.ID.String()+"/reset-token", event.Attributes[AttrResetLink])

	const newPassword = "N3w!password"
	input := &usecase.PasswordResetInput{
		UserID:          user.ID,
		Token:           "reset-token",
		NewPassword:     newPassword,
		ConfirmPassword: newPassword,
	}
	require.NoError(t, fx.srv.ConfirmPasswordReset(context.Background(), input))

	assert.Empty(t, fx.store.refreshTokens, "a reset ends every session")

	_, err = fx.login("ada@example.com", testPassword)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	_, err = fx.login("ada@example.com", newPassword)
	require.NoError(t, err)

	err = fx.srv.ConfirmPasswordReset(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid, "reset links are single use")
}

func TestAuthService_PasswordReset_Expired(t *testing.T) {
	fx := newAuthFixture(t, 0)
	user := fx.registerActive(t, "ada@example.com")

	require.NoError(t, fx.srv.RequestPasswordReset(context.Background(), "ada@example.com"))
	fx.clock = fixedNow.Add(time.Hour + time.Minute)

	err := fx.srv.ConfirmPasswordReset(context.Background(), &usecase.PasswordResetInput{
		UserID:          user.ID,
		Token:           "reset-token",
		NewPassword:     "N3w!password",
		ConfirmPassword: "N3w!password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
	_, err = fx.login("ada@example.com", testPassword)
	require.NoError(t, err, "the old password still works")
}

func TestAuthService_ChangePassword(t *testing.T) {
	fx := newAuthFixture(t, 0)
	user := fx.registerActive(t, "ada@example.com")

	err := fx.srv.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		OldPassword:     "not-it",
		NewPassword:     "N3w!password",
		ConfirmPassword: "N3w!password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	err = fx.srv.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		OldPassword:     testPassword,
		NewPassword:     "N3w!password",
		ConfirmPassword: "different",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)

	require.NoError(t, fx.srv.ChangePassword(context.Background(), user.ID, &usecase.ChangePasswordInput{
		OldPassword:     testPassword,
		NewPassword:     "N3w!password",
		ConfirmPassword: "N3w!password",
	}))

	_, err = fx.login("ada@example.com", "N3w!password")
	require.NoError(t, err)
}
