// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the password login method of a user.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time // Timestamp of when the credential was created.
	UpdatedAt    time.Time // Timestamp of the last password change.
}

// RefreshToken represents a long-lived, authorized user session.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When the session was created (i.e., login time).
}

// PasswordResetToken is a single-use secret mailed to a user who forgot their password.
type PasswordResetToken struct {
	ID        uuid.UUID  // The unique ID for this reset request.
	UserID    uuid.UUID  // The user the reset applies to.
	TokenHash string     // SHA-256 hash of the raw token.
	ExpiresAt time.Time  // When the link stops working.
	UsedAt    *time.Time // Set once the token has been redeemed.
	CreatedAt time.Time  // When the reset was requested.
}

// IsUsable reports whether the token is neither used nor expired at now.
func (t *PasswordResetToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
