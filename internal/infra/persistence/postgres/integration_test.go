package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"apparel/config"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/identifier"
	"apparel/internal/domain/repository"
	"apparel/internal/infra/persistence/migrate"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDSNEnv names the database the integration tests run against. The
// schema is migrated up and its rows are truncated before each test.
const testDSNEnv = "APPAREL_TEST_POSTGRES_DSN"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping integration test", testDSNEnv)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate.Apply(context.Background(), sqlDB))
	require.NoError(t, db.Exec("TRUNCATE identifier_sequences, users CASCADE").Error)

	return db
}

func insertTestUser(t *testing.T, db *gorm.DB, code string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.Raw(
		"INSERT INTO users (code, username, email) VALUES (?, ?, ?) RETURNING id",
		code, code, code+"@example.com",
	).Row().Scan(&id)
	require.NoError(t, err)

	return id
}

func testTransactionManager(db *gorm.DB) repository.TransactionManager {
	cfg := &config.Config{Identifier: &config.IdentifierConfig{Floor: identifier.DefaultFloor}}

	return NewTransactionManager(db, cfg)
}

func TestIdentifierRepository_Allocate_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("starts after the floor", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewIdentifierRepository(db, 0)

		first, err := repo.Allocate(ctx, identifier.PrefixOrder)
		require.NoError(t, err)
		second, err := repo.Allocate(ctx, identifier.PrefixOrder)
		require.NoError(t, err)

		assert.Equal(t, "O-101", first)
		assert.Equal(t, "O-102", second)
	})

	t.Run("seeds from stored codes", func(t *testing.T) {
		db := openTestDB(t)
		insertTestUser(t, db, "U-250")

		code, err := NewIdentifierRepository(db, 0).Allocate(ctx, identifier.PrefixUser)

		require.NoError(t, err)
		assert.Equal(t, "U-251", code)
	})

	t.Run("skips codes stored past the sequence", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewIdentifierRepository(db, 0)

		code, err := repo.Allocate(ctx, identifier.PrefixUser)
		require.NoError(t, err)
		require.Equal(t, "U-101", code)

		insertTestUser(t, db, "U-102")
		insertTestUser(t, db, "U-103")

		code, err = repo.Allocate(ctx, identifier.PrefixUser)
		require.NoError(t, err)
		assert.Equal(t, "U-104", code)
	})

	t.Run("rolled back values are handed out again", func(t *testing.T) {
		db := openTestDB(t)
		tm := testTransactionManager(db)
		errAbort := errors.New("abort")

		var lost string
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			var err error
			lost, err = f.NewIdentifierRepository().Allocate(ctx, identifier.PrefixDesign)
			require.NoError(t, err)

			return errAbort
		})
		require.ErrorIs(t, err, errAbort)

		code, err := NewIdentifierRepository(db, 0).Allocate(ctx, identifier.PrefixDesign)
		require.NoError(t, err)
		assert.Equal(t, lost, code)
	})

	t.Run("concurrent allocations are distinct", func(t *testing.T) {
		db := openTestDB(t)
		tm := testTransactionManager(db)

		const workers = 8
		codes := make(chan string, workers)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
					code, err := f.NewIdentifierRepository().Allocate(ctx, identifier.PrefixOrder)
					if err != nil {
						return err
					}
					codes <- code

					return nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		close(codes)

		seen := map[string]bool{}
		for code := range codes {
			assert.False(t, seen[code], "duplicate %s", code)
			seen[code] = true
		}
		assert.Len(t, seen, workers)
	})
}

// createTestAddress runs the default-address steps the address service runs.
func createTestAddress(ctx context.Context, f repository.RepositoryFactory, userID uuid.UUID, afterLock func()) error {
	addressRepo := f.NewAddressRepository()

	existing, err := addressRepo.LockAddressesByUser(ctx, userID, entity.AddressKindShipping)
	if err != nil {
		return err
	}
	if afterLock != nil {
		afterLock()
	}

	code, err := f.NewIdentifierRepository().Allocate(ctx, identifier.PrefixAddress)
	if err != nil {
		return err
	}

	return addressRepo.CreateAddress(ctx, &entity.Address{
		Code:      code,
		UserID:    userID,
		Kind:      entity.AddressKindShipping,
		FullName:  "Ada Lovelace",
		Street:    fmt.Sprintf("%s Market St", code),
		City:      "London",
		Country:   "UK",
		IsDefault: existing == 0,
	})
}

func TestAddressRepository_LockAddressesByUser_Integration(t *testing.T) {
	ctx := context.Background()

	t.Run("concurrent first addresses keep one default", func(t *testing.T) {
		db := openTestDB(t)
		tm := testTransactionManager(db)
		userID := insertTestUser(t, db, "U-900")

		locked := make(chan struct{})
		errs := make(chan error, 2)

		go func() {
			errs <- tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				return createTestAddress(ctx, f, userID, func() {
					close(locked)
					time.Sleep(100 * time.Millisecond)
				})
			})
		}()
		go func() {
			<-locked
			errs <- tm.Execute(ctx, func(f repository.RepositoryFactory) error {
				return createTestAddress(ctx, f, userID, nil)
			})
		}()

		require.NoError(t, <-errs)
		require.NoError(t, <-errs)

		addresses, err := NewAddressRepository(db).FindAddressesByUser(ctx, userID, entity.AddressKindShipping)
		require.NoError(t, err)
		require.Len(t, addresses, 2)

		defaults := 0
		for _, a := range addresses {
			if a.IsDefault {
				defaults++
			}
		}
		assert.Equal(t, 1, defaults)
	})

	t.Run("unknown user", func(t *testing.T) {
		db := openTestDB(t)

		_, err := NewAddressRepository(db).LockAddressesByUser(ctx, uuid.New(), entity.AddressKindShipping)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAddressRepository_ClearDefault_Integration(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	tm := testTransactionManager(db)
	userID := insertTestUser(t, db, "U-901")

	for range 2 {
		require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			return createTestAddress(ctx, f, userID, nil)
		}))
	}

	repo := NewAddressRepository(db)
	addresses, err := repo.FindAddressesByUser(ctx, userID, entity.AddressKindShipping)
	require.NoError(t, err)
	newest := addresses[0]
	require.False(t, newest.IsDefault)

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		txRepo := f.NewAddressRepository()
		if err := txRepo.ClearDefault(ctx, userID, entity.AddressKindShipping, newest.ID); err != nil {
			return err
		}
		newest.IsDefault = true

		return txRepo.UpdateAddress(ctx, newest)
	}))

	def, err := repo.FindDefaultAddress(ctx, userID, entity.AddressKindShipping)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, def.ID)

	t.Run("a second default is rejected by the index", func(t *testing.T) {
		oldest := addresses[1]
		oldest.IsDefault = true

		err := repo.UpdateAddress(ctx, oldest)

		assert.ErrorIs(t, err, repository.ErrDefaultAddressConflict)
	})
}
