package repository

import (
	"context"

	"apparel/internal/domain/entity"
	"apparel/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict means the partial unique index on
	// (user_id, kind) WHERE is_default rejected a write.
	ErrDefaultAddressConflict = errors.New("user already has a default address of this kind")
)

// AddressRepository stores shipping and billing addresses. Every list and
// default lookup is scoped to one user and one kind.
//
// Keeping a single default per kind takes three calls inside one
// transaction: LockAddressesByUser, ClearDefault, then Create or Update.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	// FindAddressesByUser is newest first, so the head is the promotion
	// candidate when the default is deleted.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) ([]*entity.Address, error)
	// FindDefaultAddress returns ErrAddressNotFound when the user has none.
	FindDefaultAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) (*entity.Address, error)
	// LockAddressesByUser locks the owning user and the rows FOR UPDATE, then
	// counts the rows. It returns ErrUserNotFound for an unknown user.
	LockAddressesByUser(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) (int64, error)
	ClearDefault(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, keepID uuid.UUID) error
	UpdateAddress(ctx context.Context, address *entity.Address) error
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
