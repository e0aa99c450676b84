package repository

import "context"

// TransactionManager scopes a unit of work. Every repository fn obtains from
// the factory shares one transaction, which commits only if fn returns nil.
// Use cases publish events after Execute returns, never inside fn.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory is the set of repositories available inside a
// transaction. Devices and dashboard reads are never part of one.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewIdentifierRepository() IdentifierRepository
	NewAddressRepository() AddressRepository
	NewProductRepository() ProductRepository
	NewPricingRuleRepository() PricingRuleRepository
	NewDesignRepository() DesignRepository
	NewOrderRepository() OrderRepository
}
