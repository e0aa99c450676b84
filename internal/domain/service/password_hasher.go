// Package service declares the ports the use cases need from infrastructure:
// hashing, tokens, events, mail, push, object storage and QR rendering.
package service

// PasswordHasher owns the password policy as well as the hash format, so the
// same rules apply to registration, reset and admin creation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports false for a malformed hash instead of failing.
	Check(password, hash string) bool
	// ValidatePasswordStrength returns a validation AppError describing the
	// first rule the password breaks.
	ValidatePasswordStrength(password string) error
}
