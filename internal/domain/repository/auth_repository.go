package repository

import (
	"context"
	"errors"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrCredentialNotFound is returned when a user has no password credential.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrResetTokenNotFound is returned when a password reset token does not exist.
	ErrResetTokenNotFound = errors.New("password reset token not found")
)

// AuthRepository stores password credentials and password reset tokens.
type AuthRepository interface {
	// CreateCredential persists the password credential of a new user.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByUserID retrieves the password credential of a user.
	FindCredentialByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	// UpdatePasswordHash replaces the stored hash for a user.
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// CreatePasswordResetToken persists a new reset token.
	CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	// FindPasswordResetToken retrieves a reset token by user and hash.
	FindPasswordResetToken(ctx context.Context, userID uuid.UUID, tokenHash string) (*entity.PasswordResetToken, error)

	// MarkPasswordResetTokenUsed stamps the token as redeemed.
	MarkPasswordResetTokenUsed(ctx context.Context, id uuid.UUID) error
}
