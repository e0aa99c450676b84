package impl

import (
	"context"
	"sync"
	"testing"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAddressService(t *testing.T) (*memStore, usecase.AddressUsecase) {
	t.Helper()

	store := newMemStore()
	srv := NewAddressService(AddressServiceParams{
		TxManager:   store,
		AddressRepo: memAddresses{store},
		Logger:      newDiscardLogger(),
	})

	return store, srv
}

func addressInput(city string, isDefault *bool) *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName:  "Ada Lovelace",
		Street:    "12 Analytical Row",
		City:      city,
		Country:   "UK",
		IsDefault: isDefault,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func TestAddressService_CreateAddress_FirstIsDefault(t *testing.T) {
	store, srv := createTestAddressService(t)
	userID := uuid.New()

	first, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("London", boolPtr(false)))
	require.NoError(t, err)
	assert.True(t, first.IsDefault, "the first address of a kind is the default even when asked otherwise")
	assert.Equal(t, "A-101", first.Code)

	second, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("Leeds", nil))
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
	assert.Equal(t, "A-102", second.Code)

	billing, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindBilling, addressInput("York", nil))
	require.NoError(t, err)
	assert.True(t, billing.IsDefault, "kinds keep separate defaults")

	assert.Equal(t, 1, store.defaultCount(userID, entity.AddressKindShipping))
	assert.Equal(t, 1, store.defaultCount(userID, entity.AddressKindBilling))
}

func TestAddressService_CreateAddress_NewDefaultReplacesOld(t *testing.T) {
	store, srv := createTestAddressService(t)
	userID := uuid.New()

	first, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("London", nil))
	require.NoError(t, err)

	second, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("Leeds", boolPtr(true)))
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	reloaded, err := srv.GetAddress(context.Background(), userID, entity.AddressKindShipping, first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)

	def, err := srv.GetDefaultAddress(context.Background(), userID, entity.AddressKindShipping)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)
	assert.Equal(t, 1, store.defaultCount(userID, entity.AddressKindShipping))
}

func TestAddressService_CreateAddress_ConcurrentDefaults(t *testing.T) {
	store, srv := createTestAddressService(t)
	userID := uuid.New()

	const writers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = make(map[string]bool, writers)
	)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			address, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("London", boolPtr(true)))
			if !assert.NoError(t, err) {
				return
			}

			mu.Lock()
			defer mu.Unlock()
			codes[address.Code] = true
		}()
	}
	wg.Wait()

	assert.Len(t, codes, writers, "every address gets its own code")
	assert.Equal(t, 1, store.defaultCount(userID, entity.AddressKindShipping))
}

func TestAddressService_CreateAddress_InvalidKind(t *testing.T) {
	_, srv := createTestAddressService(t)

	_, err := srv.CreateAddress(context.Background(), uuid.New(), "office", addressInput("London", nil))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_UpdateAddress(t *testing.T) {
	store, srv := createTestAddressService(t)
	userID := uuid.New()

	first, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("London", nil))
	require.NoError(t, err)
	second, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("Leeds", nil))
	require.NoError(t, err)

	t.Run("edits fields and keeps the default", func(t *testing.T) {
		updated, err := srv.UpdateAddress(context.Background(), userID, entity.AddressKindShipping, first.ID, &usecase.AddressInput{City: "Bath"})
		require.NoError(t, err)
		assert.Equal(t, "Bath", updated.City)
		assert.Equal(t, "12 Analytical Row", updated.Street, "empty fields are left alone")
		assert.True(t, updated.IsDefault)
	})

	t.Run("default cannot be switched off", func(t *testing.T) {
		_, err := srv.UpdateAddress(context.Background(), userID, entity.AddressKindShipping, first.ID, &usecase.AddressInput{IsDefault: boolPtr(false)})
		assert.ErrorIs(t, err, domainerrors.ErrDefaultAddressRequired)
		assert.Equal(t, 1, store.defaultCount(userID, entity.AddressKindShipping))
	})

	t.Run("set default moves the flag", func(t *testing.T) {
		moved, err := srv.SetDefaultAddress(context.Background(), userID, entity.AddressKindShipping, second.ID)
		require.NoError(t, err)
		assert.True(t, moved.IsDefault)

		old, err := srv.GetAddress(context.Background(), userID, entity.AddressKindShipping, first.ID)
		require.NoError(t, err)
		assert.False(t, old.IsDefault)
		assert.Equal(t, 1, store.defaultCount(userID, entity.AddressKindShipping))
	})

	t.Run("other users cannot edit", func(t *testing.T) {
		_, err := srv.UpdateAddress(context.Background(), uuid.New(), entity.AddressKindShipping, first.ID, &usecase.AddressInput{City: "Hull"})
		assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
	})

	t.Run("wrong kind is not found", func(t *testing.T) {
		_, err := srv.GetAddress(context.Background(), userID, entity.AddressKindBilling, first.ID)
		assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})
}

func TestAddressService_DeleteAddress_PromotesNewest(t *testing.T) {
	store, srv := createTestAddressService(t)
	userID := uuid.New()

	def, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("London", nil))
	require.NoError(t, err)
	_, err = srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("Leeds", nil))
	require.NoError(t, err)
	newest, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("York", nil))
	require.NoError(t, err)

	require.NoError(t, srv.DeleteAddress(context.Background(), userID, entity.AddressKindShipping, def.ID))

	promoted, err := srv.GetDefaultAddress(context.Background(), userID, entity.AddressKindShipping)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, promoted.ID)
	assert.Equal(t, 1, store.defaultCount(userID, entity.AddressKindShipping))

	remaining, err := srv.ListAddresses(context.Background(), userID, entity.AddressKindShipping)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestAddressService_DeleteAddress_LastOne(t *testing.T) {
	store, srv := createTestAddressService(t)
	userID := uuid.New()

	only, err := srv.CreateAddress(context.Background(), userID, entity.AddressKindShipping, addressInput("London", nil))
	require.NoError(t, err)

	require.NoError(t, srv.DeleteAddress(context.Background(), userID, entity.AddressKindShipping, only.ID))

	_, err = srv.GetDefaultAddress(context.Background(), userID, entity.AddressKindShipping)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	assert.Zero(t, store.defaultCount(userID, entity.AddressKindShipping))

	err = srv.DeleteAddress(context.Background(), userID, entity.AddressKindShipping, only.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
