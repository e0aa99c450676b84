// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a customer account.
type RegisterInput struct {
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Consent         bool
}

// CreateAdminInput defines the staff account provisioned from the command line.
type CreateAdminInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// PasswordResetInput redeems a mailed password reset link.
type PasswordResetInput struct {
	UserID          uuid.UUID
	Token           string
	NewPassword     string
	ConfirmPassword string
}

// ChangePasswordInput changes the password of a logged in user.
type ChangePasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created, not yet verified user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines the account lifecycle: registration, e-mail
// verification, sessions and password management.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	ResendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, input *PasswordResetInput) error
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	// CreateAdmin provisions an active admin account. It is not reachable over HTTP.
	CreateAdmin(ctx context.Context, input *CreateAdminInput) (*entity.User, error)
}
