package postgres

import (
	"context"
	"strings"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"
	"apparel/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// uniqueDefaultAddressIndex is the partial unique index on (user_id, kind) WHERE is_default.
const uniqueDefaultAddressIndex = "uq_addresses_default_per_kind"

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return translateAddressWriteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser lists a user's addresses of one kind, newest first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, m := range addressModels {
		addresses = append(addresses, toAddressDomain(m))
	}

	return addresses, nil
}

// FindDefaultAddress returns the default address of a kind.
func (repo *addressRepository) FindDefaultAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND kind = ? AND is_default = ?", userID, string(kind), true).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address")
	}

	return toAddressDomain(&addressM), nil
}

// LockAddressesByUser locks the owning user row, then the user's addresses of
// the kind, and counts them. The user row lock serialises a user's first
// address, when no address row exists to lock yet.
func (repo *addressRepository) LockAddressesByUser(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) (int64, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	var owner []uuid.UUID
	if err := db.Model(&model.UserModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", userID).
		Pluck("id", &owner).Error; err != nil {
		return 0, errors.Wrap(err, "failed to lock address owner")
	}
	if len(owner) == 0 {
		return 0, domainerrors.ErrUserNotFound
	}

	var ids []uuid.UUID
	if err := db.Model(&model.AddressModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Pluck("id", &ids).Error; err != nil {
		return 0, errors.Wrap(err, "failed to lock addresses")
	}

	return int64(len(ids)), nil
}

// ClearDefault unsets is_default on all of the user's addresses of a kind except keepID.
func (repo *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, keepID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Model(&model.AddressModel{}).
		Where("user_id = ? AND kind = ? AND is_default = ? AND id <> ?", userID, string(kind), true, keepID).
		Update("is_default", false).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default address")
	}

	return nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).Model(&model.AddressModel{ID: address.ID}).
		Select("full_name", "phone", "email", "street", "city", "postal_code", "province_state",
			"country", "is_default", "updated_at").
		Updates(addressM)
	if result.Error != nil {
		return translateAddressWriteError(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

func translateAddressWriteError(err error, msg string) error {
	if isUniqueConstraintViolation(err) {
		if strings.Contains(pgConstraintName(err), "code") {
			return repository.ErrDuplicateIdentifier
		}
		if name := pgConstraintName(err); name == "" || name == uniqueDefaultAddressIndex {
			return repository.ErrDefaultAddressConflict
		}
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:            data.ID,
		Code:          data.Code,
		UserID:        data.UserID,
		Kind:          entity.AddressKind(data.Kind),
		FullName:      data.FullName,
		Phone:         data.Phone,
		Email:         data.Email,
		Street:        data.Street,
		City:          data.City,
		PostalCode:    data.PostalCode,
		ProvinceState: data.ProvinceState,
		Country:       data.Country,
		IsDefault:     data.IsDefault,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:            data.ID,
		Code:          data.Code,
		UserID:        data.UserID,
		Kind:          string(data.Kind),
		FullName:      data.FullName,
		Phone:         data.Phone,
		Email:         data.Email,
		Street:        data.Street,
		City:          data.City,
		PostalCode:    data.PostalCode,
		ProvinceState: data.ProvinceState,
		Country:       data.Country,
		IsDefault:     data.IsDefault,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
