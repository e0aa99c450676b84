package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"apparel/config"
	"apparel/internal/domain/service"
	"apparel/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTokenTTL,
		refreshTTL:    refreshTokenTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.sign(userID, roles, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign access token")
	}

	// Refresh tokens carry no roles; roles are re-read from the user on refresh.
	refreshToken, err = s.sign(userID, nil, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign refresh token")
	}

	return accessToken, refreshToken, nil
}

// ValidateToken parses tokenString and verifies it with the secret matching its type claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		c, ok := token.Claims.(*service.Claims)
		if !ok {
			return nil, jwt.ErrTokenInvalidClaims
		}

		switch c.Type {
		case service.TokenTypeAccess:
			return s.accessSecret, nil
		case service.TokenTypeRefresh:
			return s.refreshSecret, nil
		default:
			return nil, errors.Errorf("unknown token type %q", c.Type)
		}
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// HashToken returns the hex SHA-256 of token; only hashes are persisted.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(userID uuid.UUID, roles []string, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique ID keeps two tokens issued in the same second distinct.
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
