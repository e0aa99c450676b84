package repository

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository holds one row per login session. Only a hash of the
// refresh JWT is stored; callers hash before every lookup.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error
	// DeleteRefreshTokensByUserID signs the user out everywhere after a
	// password reset.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
	// CountActiveSessionsByUserID ignores expired rows that were never deleted.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
