package postgres

import (
	"context"

	"apparel/config"
	"apparel/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db              *gorm.DB
	identifierFloor int64
}

func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	return &gormTransactionManager{db: db, identifierFloor: cfg.Identifier.Floor}
}

// Execute runs fn in one transaction on the primary. gorm commits when fn
// returns nil and rolls back on an error or a panic, which it re-raises.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txScope{tx: tx, identifierFloor: tm.identifierFloor})

		return fnErr
	})

	switch {
	case fnErr != nil:
		// Rollback failures are secondary; the caller needs fn's error.
		return fnErr
	case err != nil:
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// txScope hands out repositories that all run on tx.
type txScope struct {
	tx              *gorm.DB
	identifierFloor int64
}

func (s txScope) NewUserRepository() repository.UserRepository { return NewUserRepository(s.tx) }
func (s txScope) NewAuthRepository() repository.AuthRepository { return NewAuthRepository(s.tx) }

func (s txScope) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(s.tx)
}

func (s txScope) NewIdentifierRepository() repository.IdentifierRepository {
	return NewIdentifierRepository(s.tx, s.identifierFloor)
}

func (s txScope) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(s.tx)
}

func (s txScope) NewProductRepository() repository.ProductRepository {
	return NewProductRepository(s.tx)
}

func (s txScope) NewPricingRuleRepository() repository.PricingRuleRepository {
	return NewPricingRuleRepository(s.tx)
}

func (s txScope) NewDesignRepository() repository.DesignRepository { return NewDesignRepository(s.tx) }
func (s txScope) NewOrderRepository() repository.OrderRepository   { return NewOrderRepository(s.tx) }
