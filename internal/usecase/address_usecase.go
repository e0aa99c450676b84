package usecase

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput describes a shipping or billing address.
type AddressInput struct {
	FullName      string
	Phone         string
	Email         string
	Street        string
	City          string
	PostalCode    string
	ProvinceState string
	Country       string
	IsDefault     *bool // nil keeps the current flag on update, false on create.
}

// AddressUsecase manages a user's addresses and keeps exactly one default
// address per kind once any address of that kind exists.
type AddressUsecase interface {
	CreateAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, input *AddressInput) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) ([]*entity.Address, error)
	GetAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, addressID uuid.UUID) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, addressID uuid.UUID) (*entity.Address, error)
	GetDefaultAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) (*entity.Address, error)
}
