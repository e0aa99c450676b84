package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim. Access and refresh tokens are
// signed with different secrets.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"` // access tokens only
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues the bearer tokens used by the API.
type TokenService interface {
	// GenerateTokens returns a fresh access/refresh pair. Each refresh token
	// carries a unique jti so two pairs issued in the same second differ.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)
	// ValidateToken verifies signature and expiry, selecting the key by the token's type claim.
	ValidateToken(tokenString string) (*Claims, error)
	// HashToken is what refresh token storage keys on; raw tokens are never stored.
	HashToken(token string) string
	GetRefreshTokenDuration() time.Duration
}
