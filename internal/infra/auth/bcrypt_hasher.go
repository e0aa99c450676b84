// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"apparel/config"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and password strength sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, policy)
}

func newBcryptHasher(cost int, policy config.PasswordStrengthConfig) *bcryptHasher {
	if policy.MinLength <= 0 {
		policy.MinLength = defaultMinPasswordLength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy
	length := len([]rune(password))

	if length < p.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("must be at least " + strconv.Itoa(p.MinLength) + " characters long")
	}
	if p.MaxLength > 0 && length > p.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("must be at most " + strconv.Itoa(p.MaxLength) + " characters long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if p.RequireLowercase && !hasLower {
		missing = append(missing, "must contain at least one lowercase letter")
	}
	if p.RequireUppercase && !hasUpper {
		missing = append(missing, "must contain at least one uppercase letter")
	}
	if p.RequireNumbers && !hasNumber {
		missing = append(missing, "must contain at least one number")
	}
	if p.RequireSpecial && !hasSpecial {
		missing = append(missing, "must contain at least one special character")
	}
	if len(missing) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(strings.Join(missing, "; "))
	}

	return nil
}
