// Package repository declares the storage ports of the shop. Implementations
// translate driver errors into the sentinels declared next to each port.
package repository

import (
	"context"
	"errors"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail means another account already uses the address,
	// compared case-insensitively.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository stores customer and admin accounts. Credentials, refresh
// tokens and devices live in their own repositories keyed by user ID.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByEmail ignores case and surrounding whitespace.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create fills in ID and timestamps. It returns ErrDuplicateIdentifier
	// when user.Code collides so the caller can allocate a new code.
	Create(ctx context.Context, user *entity.User) error
	// Update writes profile fields, OTP state, activation and notification
	// settings in one statement.
	Update(ctx context.Context, user *entity.User) error
}
