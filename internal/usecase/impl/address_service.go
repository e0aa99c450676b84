package impl

import (
	"context"
	"log/slog"

	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/identifier"
	"apparel/internal/domain/repository"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// addressService implements the AddressUsecase interface.
//
// Every write that can move the default flag first locks all of the user's
// addresses of the same kind, so concurrent writers for one user are
// serialised and the "at most one default" rule is checked against a stable
// set. The partial unique index on (user_id, kind) WHERE is_default backs it.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress stores a new address. The first address of a kind always
// becomes the default.
func (srv *addressService) CreateAddress(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.AddressKind,
	input *usecase.AddressInput,
) (*entity.Address, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown address kind " + kind.String())
	}

	var created *entity.Address
	err := executeWithIdentifierRetry(ctx, srv.txManager, srv.log(ctx), func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		existing, err := addressRepo.LockAddressesByUser(ctx, userID, kind)
		if err != nil {
			return errors.Wrap(err, "failed to lock addresses")
		}

		address := &entity.Address{UserID: userID, Kind: kind}
		applyAddressInput(address, input)
		address.IsDefault = existing == 0 || (input.IsDefault != nil && *input.IsDefault)

		if address.IsDefault && existing > 0 {
			if err := addressRepo.ClearDefault(ctx, userID, kind, uuid.Nil); err != nil {
				return errors.Wrap(err, "failed to clear previous default")
			}
		}

		code, err := repoFactory.NewIdentifierRepository().Allocate(ctx, identifier.PrefixAddress)
		if err != nil {
			return errors.Wrap(err, "failed to allocate address code")
		}
		address.Code = code

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return translateAddressError(err)
		}
		created = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create address", slog.Any("userID", userID), slog.String("kind", kind.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Debug("Address created", slog.String("code", created.Code), slog.Bool("isDefault", created.IsDefault))

	return created, nil
}

// ListAddresses lists the user's addresses of a kind, newest first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) ([]*entity.Address, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown address kind " + kind.String())
	}

	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID, kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetAddress returns one of the user's addresses.
func (srv *addressService) GetAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, addressID uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		return nil, translateAddressError(err)
	}
	if err := checkAddressOwner(address, userID, kind); err != nil {
		return nil, err
	}

	return address, nil
}

// UpdateAddress edits an address. Setting is_default moves the flag here;
// clearing it on the default address is rejected because a user who has
// addresses always keeps one default.
func (srv *addressService) UpdateAddress(
	ctx context.Context,
	userID uuid.UUID,
	kind entity.AddressKind,
	addressID uuid.UUID,
	input *usecase.AddressInput,
) (*entity.Address, error) {
	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.loadLocked(ctx, addressRepo, userID, kind, addressID)
		if err != nil {
			return err
		}

		applyAddressInput(address, input)

		if input.IsDefault != nil {
			switch {
			case *input.IsDefault && !address.IsDefault:
				if err := addressRepo.ClearDefault(ctx, userID, kind, address.ID); err != nil {
					return errors.Wrap(err, "failed to clear previous default")
				}
				address.IsDefault = true
			case !*input.IsDefault && address.IsDefault:
				return domainerrors.ErrDefaultAddressRequired
			}
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return translateAddressError(err)
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return updated, nil
}

// DeleteAddress removes an address. When it was the default, the most
// recently created remaining address of the kind takes over.
func (srv *addressService) DeleteAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.loadLocked(ctx, addressRepo, userID, kind, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, address.ID); err != nil {
			return translateAddressError(err)
		}
		if !address.IsDefault {
			return nil
		}

		remaining, err := addressRepo.FindAddressesByUser(ctx, userID, kind)
		if err != nil {
			return errors.Wrap(err, "failed to list remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		promoted := remaining[0]
		promoted.IsDefault = true
		if err := addressRepo.UpdateAddress(ctx, promoted); err != nil {
			return translateAddressError(err)
		}
		srv.log(ctx).Debug("Promoted default address", slog.String("code", promoted.Code))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// SetDefaultAddress makes an address the default of its kind.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind, addressID uuid.UUID) (*entity.Address, error) {
	isDefault := true

	return srv.UpdateAddress(ctx, userID, kind, addressID, &usecase.AddressInput{IsDefault: &isDefault})
}

// GetDefaultAddress returns the user's default address of a kind.
func (srv *addressService) GetDefaultAddress(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) (*entity.Address, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown address kind " + kind.String())
	}

	address, err := srv.addressRepo.FindDefaultAddress(ctx, userID, kind)
	if err != nil {
		return nil, translateAddressError(err)
	}

	return address, nil
}

func (srv *addressService) loadLocked(
	ctx context.Context,
	addressRepo repository.AddressRepository,
	userID uuid.UUID,
	kind entity.AddressKind,
	addressID uuid.UUID,
) (*entity.Address, error) {
	if _, err := addressRepo.LockAddressesByUser(ctx, userID, kind); err != nil {
		return nil, errors.Wrap(err, "failed to lock addresses")
	}

	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		return nil, translateAddressError(err)
	}
	if err := checkAddressOwner(address, userID, kind); err != nil {
		return nil, err
	}

	return address, nil
}

func checkAddressOwner(address *entity.Address, userID uuid.UUID, kind entity.AddressKind) error {
	if address.UserID != userID {
		return domainerrors.ErrAddressOwnershipViolation
	}
	if address.Kind != kind {
		return domainerrors.ErrAddressNotFound
	}

	return nil
}

// applyAddressInput copies the non-empty fields of input onto address.
func applyAddressInput(address *entity.Address, input *usecase.AddressInput) {
	if input == nil {
		return
	}

	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&address.FullName, input.FullName)
	set(&address.Phone, input.Phone)
	set(&address.Email, input.Email)
	set(&address.Street, input.Street)
	set(&address.City, input.City)
	set(&address.PostalCode, input.PostalCode)
	set(&address.ProvinceState, input.ProvinceState)
	set(&address.Country, input.Country)
}

func translateAddressError(err error) error {
	switch {
	case errors.Is(err, repository.ErrAddressNotFound):
		return domainerrors.ErrAddressNotFound
	case errors.Is(err, repository.ErrDefaultAddressConflict):
		return domainerrors.ErrConflict.WithDetails("another default address was set concurrently")
	case errors.Is(err, repository.ErrDuplicateIdentifier):
		return err
	default:
		return errors.Wrap(err, "address repository error")
	}
}
