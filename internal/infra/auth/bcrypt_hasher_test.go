package auth

import (
	"testing"

	"apparel/config"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strictPolicy() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        64,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, strictPolicy())

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashRejectsWeakPassword(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, strictPolicy())

	weakPasswords := []string{
		"Ab1!",         // Too short
		"PASSWORD123!", // No lowercase
		"password123!", // No uppercase
		"PasswordABC!", // No numbers
		"Password123",  // No special characters
	}

	for _, weak := range weakPasswords {
		_, err := hasher.Hash(weak)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength), "expected strength error for %q", weak)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, strictPolicy())
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, strictPolicy())

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1!", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Password123", "must contain at least one special character"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}

	assert.NoError(t, hasher.ValidatePasswordStrength("Valid$Phrase2024"))
}

func TestBcryptHasher_LenientPolicyOnlyChecksLength(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, config.PasswordStrengthConfig{})

	assert.NoError(t, hasher.ValidatePasswordStrength("lowercase"))
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: 6},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 8},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}
