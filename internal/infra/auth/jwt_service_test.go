package auth

import (
	"testing"
	"time"

	"apparel/config"
	"apparel/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func createTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := createTestJWTService(t)
	userID := uuid.New()
	roles := []string{"user", "admin"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	jwtService := createTestJWTService(t)
	userID := uuid.New()

	_, first, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)
	_, second, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)

	assert.NotEqual(t, jwtService.HashToken(first), jwtService.HashToken(second))
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := createTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsTokenSignedWithWrongSecret(t *testing.T) {
	jwtService := createTestJWTService(t)

	// Claims an access type but is signed with the refresh secret.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwtService.refreshSecret)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(forged)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService := createTestJWTService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: uuid.New(),
		Type:   "session",
	}).SignedString(jwtService.accessSecret)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := createTestJWTService(t)
	jwtService.now = func() time.Time { return time.Now().Add(-time.Hour) }

	accessToken, _, err := jwtService.GenerateTokens(uuid.New(), []string{"user"})
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService := createTestJWTService(t)

	hash := jwtService.HashToken("token")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, jwtService.HashToken("token"))
	assert.NotEqual(t, hash, jwtService.HashToken("other"))
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService := createTestJWTService(t)

	assert.Equal(t, 7*24*time.Hour, jwtService.GetRefreshTokenDuration())
}
