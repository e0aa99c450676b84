package repository

import (
	"context"
	"errors"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDesignNotFound is returned when a design is not found.
var ErrDesignNotFound = errors.New("design not found")

// DesignRepository persists user designs.
type DesignRepository interface {
	CreateDesign(ctx context.Context, design *entity.UserDesign) error
	FindDesignByID(ctx context.Context, id uuid.UUID) (*entity.UserDesign, error)
	// FindDesignByIDForUpdate locks the design row until the transaction ends.
	FindDesignByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.UserDesign, error)
	FindDesignsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDesign, error)
	UpdateDesign(ctx context.Context, design *entity.UserDesign) error
	DeleteDesign(ctx context.Context, id uuid.UUID) error
}
