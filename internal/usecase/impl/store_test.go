package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"testing"
	"time"

	"apparel/config"
	"apparel/internal/domain/entity"
	"apparel/internal/domain/identifier"
	"apparel/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for the database. Rows are stored by
// value so callers never share memory with the store, which lets a failed
// transaction restore the state it started from.
type memStore struct {
	txMu sync.Mutex // held for the duration of a transaction, like row locks
	mu   sync.Mutex // guards the maps below

	clock time.Time

	users         map[uuid.UUID]entity.User
	credentials   map[uuid.UUID]entity.Credential
	resetTokens   map[uuid.UUID]entity.PasswordResetToken
	refreshTokens map[string]entity.RefreshToken
	addresses     map[uuid.UUID]entity.Address
	products      map[uuid.UUID]entity.ApparelProduct
	pricingRules  map[uuid.UUID]entity.PricingRule
	designs       map[uuid.UUID]entity.UserDesign
	orders        map[uuid.UUID]entity.Order
	sequences     map[string]int64

	// replayAllocations makes the next n Allocate calls of a prefix hand
	// out the last identifier again, as a stale sequence would.
	replayAllocations map[string]int
	lastAllocated     map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		clock:         time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		users:         make(map[uuid.UUID]entity.User),
		credentials:   make(map[uuid.UUID]entity.Credential),
		resetTokens:   make(map[uuid.UUID]entity.PasswordResetToken),
		refreshTokens: make(map[string]entity.RefreshToken),
		addresses:     make(map[uuid.UUID]entity.Address),
		products:      make(map[uuid.UUID]entity.ApparelProduct),
		pricingRules:  make(map[uuid.UUID]entity.PricingRule),
		designs:       make(map[uuid.UUID]entity.UserDesign),
		orders:        make(map[uuid.UUID]entity.Order),
		sequences:     make(map[string]int64),

		replayAllocations: make(map[string]int),
		lastAllocated:     make(map[string]string),
	}
}

type memSnapshot struct {
	users         map[uuid.UUID]entity.User
	credentials   map[uuid.UUID]entity.Credential
	resetTokens   map[uuid.UUID]entity.PasswordResetToken
	refreshTokens map[string]entity.RefreshToken
	addresses     map[uuid.UUID]entity.Address
	products      map[uuid.UUID]entity.ApparelProduct
	pricingRules  map[uuid.UUID]entity.PricingRule
	designs       map[uuid.UUID]entity.UserDesign
	orders        map[uuid.UUID]entity.Order
	sequences     map[string]int64
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return memSnapshot{
		users:         maps.Clone(s.users),
		credentials:   maps.Clone(s.credentials),
		resetTokens:   maps.Clone(s.resetTokens),
		refreshTokens: maps.Clone(s.refreshTokens),
		addresses:     maps.Clone(s.addresses),
		products:      maps.Clone(s.products),
		pricingRules:  maps.Clone(s.pricingRules),
		designs:       maps.Clone(s.designs),
		orders:        maps.Clone(s.orders),
		sequences:     maps.Clone(s.sequences),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.credentials = snap.credentials
	s.resetTokens = snap.resetTokens
	s.refreshTokens = snap.refreshTokens
	s.addresses = snap.addresses
	s.products = snap.products
	s.pricingRules = snap.pricingRules
	s.designs = snap.designs
	s.orders = snap.orders
	s.sequences = snap.sequences
}

// tick returns a strictly increasing timestamp so "newest first" orderings are stable.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)

	return s.clock
}

// Execute runs fn serialised with every other transaction and rolls the
// store back when fn fails.
func (s *memStore) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(memFactory{s}); err != nil {
		s.restore(snap)

		return err
	}

	return nil
}

type memFactory struct{ s *memStore }

func (f memFactory) NewUserRepository() repository.UserRepository {
	return memUsers{f.s}
}

func (f memFactory) NewAuthRepository() repository.AuthRepository {
	return memAuth{f.s}
}

func (f memFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return memRefreshTokens{f.s}
}

func (f memFactory) NewIdentifierRepository() repository.IdentifierRepository {
	return memIdentifiers{f.s}
}

func (f memFactory) NewAddressRepository() repository.AddressRepository {
	return memAddresses{f.s}
}

func (f memFactory) NewProductRepository() repository.ProductRepository {
	return memProducts{f.s}
}

func (f memFactory) NewPricingRuleRepository() repository.PricingRuleRepository {
	return memPricingRules{f.s}
}

func (f memFactory) NewDesignRepository() repository.DesignRepository {
	return memDesigns{f.s}
}

func (f memFactory) NewOrderRepository() repository.OrderRepository {
	return memOrders{f.s}
}

// Identifiers

type memIdentifiers struct{ s *memStore }

func (r memIdentifiers) Allocate(_ context.Context, prefix string) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.replayAllocations[prefix] > 0 && r.s.lastAllocated[prefix] != "" {
		r.s.replayAllocations[prefix]--

		return r.s.lastAllocated[prefix], nil
	}

	last := ""
	if n, ok := r.s.sequences[prefix]; ok {
		last = identifier.Format(prefix, n)
	}
	next := identifier.NextValue(prefix, last, identifier.DefaultFloor)
	r.s.sequences[prefix] = next
	r.s.lastAllocated[prefix] = identifier.Format(prefix, next)

	return r.s.lastAllocated[prefix], nil
}

// Users

type memUsers struct{ s *memStore }

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUsers) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Code == user.Code {
			return repository.ErrDuplicateIdentifier
		}
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = r.s.tick()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user

	return nil
}

func (r memUsers) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for _, existing := range r.s.users {
		if existing.ID != user.ID && existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.UpdatedAt = r.s.tick()
	r.s.users[user.ID] = *user

	return nil
}

// Credentials and reset tokens

type memAuth struct{ s *memStore }

func (r memAuth) CreateCredential(_ context.Context, credential *entity.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if credential.ID == uuid.Nil {
		credential.ID = uuid.New()
	}
	r.s.credentials[credential.UserID] = *credential

	return nil
}

func (r memAuth) FindCredentialByUserID(_ context.Context, userID uuid.UUID) (*entity.Credential, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	credential, ok := r.s.credentials[userID]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}

	return &credential, nil
}

func (r memAuth) UpdatePasswordHash(_ context.Context, userID uuid.UUID, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	credential, ok := r.s.credentials[userID]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	credential.PasswordHash = passwordHash
	r.s.credentials[userID] = credential

	return nil
}

func (r memAuth) CreatePasswordResetToken(_ context.Context, token *entity.PasswordResetToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.s.resetTokens[token.ID] = *token

	return nil
}

func (r memAuth) FindPasswordResetToken(_ context.Context, userID uuid.UUID, tokenHash string) (*entity.PasswordResetToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, token := range r.s.resetTokens {
		if token.UserID == userID && token.TokenHash == tokenHash {
			return &token, nil
		}
	}

	return nil, repository.ErrResetTokenNotFound
}

func (r memAuth) MarkPasswordResetTokenUsed(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	token, ok := r.s.resetTokens[id]
	if !ok {
		return repository.ErrResetTokenNotFound
	}
	usedAt := r.s.tick()
	token.UsedAt = &usedAt
	r.s.resetTokens[id] = token

	return nil
}

// Refresh tokens

type memRefreshTokens struct{ s *memStore }

func (r memRefreshTokens) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.s.refreshTokens[token.TokenHash] = *token

	return nil
}

func (r memRefreshTokens) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	token, ok := r.s.refreshTokens[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return &token, nil
}

func (r memRefreshTokens) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.refreshTokens, tokenHash)

	return nil
}

func (r memRefreshTokens) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.refreshTokens, func(_ string, token entity.RefreshToken) bool {
		return token.UserID == userID
	})

	return nil
}

func (r memRefreshTokens) CountActiveSessionsByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, token := range r.s.refreshTokens {
		if token.UserID == userID {
			count++
		}
	}

	return count, nil
}

// Addresses

type memAddresses struct{ s *memStore }

func (r memAddresses) CreateAddress(_ context.Context, address *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.addresses {
		if existing.Code == address.Code {
			return repository.ErrDuplicateIdentifier
		}
		if address.IsDefault && existing.IsDefault && existing.UserID == address.UserID && existing.Kind == address.Kind {
			return repository.ErrDefaultAddressConflict
		}
	}
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	address.CreatedAt = r.s.tick()
	address.UpdatedAt = address.CreatedAt
	r.s.addresses[address.ID] = *address

	return nil
}

func (r memAddresses) FindAddressByID(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	address, ok := r.s.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	return &address, nil
}

func (r memAddresses) FindAddressesByUser(_ context.Context, userID uuid.UUID, kind entity.AddressKind) ([]*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.Address
	for _, address := range r.s.addresses {
		if address.UserID == userID && address.Kind == kind {
			result = append(result, &address)
		}
	}
	slices.SortFunc(result, func(a, b *entity.Address) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (r memAddresses) FindDefaultAddress(_ context.Context, userID uuid.UUID, kind entity.AddressKind) (*entity.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, address := range r.s.addresses {
		if address.UserID == userID && address.Kind == kind && address.IsDefault {
			return &address, nil
		}
	}

	return nil, repository.ErrAddressNotFound
}

func (r memAddresses) LockAddressesByUser(ctx context.Context, userID uuid.UUID, kind entity.AddressKind) (int64, error) {
	addresses, err := r.FindAddressesByUser(ctx, userID, kind)

	return int64(len(addresses)), err
}

func (r memAddresses) ClearDefault(_ context.Context, userID uuid.UUID, kind entity.AddressKind, keepID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, address := range r.s.addresses {
		if address.UserID == userID && address.Kind == kind && id != keepID && address.IsDefault {
			address.IsDefault = false
			r.s.addresses[id] = address
		}
	}

	return nil
}

func (r memAddresses) UpdateAddress(_ context.Context, address *entity.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.addresses[address.ID]; !ok {
		return repository.ErrAddressNotFound
	}
	for id, existing := range r.s.addresses {
		if id != address.ID && address.IsDefault && existing.IsDefault && existing.UserID == address.UserID && existing.Kind == address.Kind {
			return repository.ErrDefaultAddressConflict
		}
	}
	r.s.addresses[address.ID] = *address

	return nil
}

func (r memAddresses) DeleteAddress(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.addresses[id]; !ok {
		return repository.ErrAddressNotFound
	}
	delete(r.s.addresses, id)

	return nil
}

// Products and pricing rules

type memProducts struct{ s *memStore }

func (r memProducts) CreateProduct(_ context.Context, product *entity.ApparelProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.products {
		if existing.Code == product.Code {
			return repository.ErrDuplicateIdentifier
		}
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = r.s.tick()
	r.s.products[product.ID] = *product

	return nil
}

func (r memProducts) FindProductByID(_ context.Context, id uuid.UUID) (*entity.ApparelProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

func (r memProducts) ListProducts(_ context.Context, activeOnly bool) ([]*entity.ApparelProduct, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.ApparelProduct
	for _, product := range r.s.products {
		if activeOnly && !product.IsActive {
			continue
		}
		result = append(result, &product)
	}
	slices.SortFunc(result, func(a, b *entity.ApparelProduct) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return result, nil
}

func (r memProducts) UpdateProduct(_ context.Context, product *entity.ApparelProduct) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.s.products[product.ID] = *product

	return nil
}

type memPricingRules struct{ s *memStore }

func (r memPricingRules) FindByProductID(_ context.Context, productID uuid.UUID) (*entity.PricingRule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rule, ok := r.s.pricingRules[productID]
	if !ok {
		return nil, repository.ErrPricingRuleNotFound
	}

	return &rule, nil
}

func (r memPricingRules) Upsert(_ context.Context, rule *entity.PricingRule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.pricingRules[rule.ProductID]; ok {
		rule.ID = existing.ID
	} else if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	r.s.pricingRules[rule.ProductID] = *rule

	return nil
}

func (r memPricingRules) DeleteByProductID(_ context.Context, productID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pricingRules[productID]; !ok {
		return repository.ErrPricingRuleNotFound
	}
	delete(r.s.pricingRules, productID)

	return nil
}

func (r memPricingRules) List(_ context.Context) ([]*entity.PricingRule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*entity.PricingRule, 0, len(r.s.pricingRules))
	for _, rule := range r.s.pricingRules {
		result = append(result, &rule)
	}

	return result, nil
}

// Designs

type memDesigns struct{ s *memStore }

func (r memDesigns) CreateDesign(_ context.Context, design *entity.UserDesign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.designs {
		if existing.Code == design.Code {
			return repository.ErrDuplicateIdentifier
		}
	}
	if design.ID == uuid.Nil {
		design.ID = uuid.New()
	}
	design.CreatedAt = r.s.tick()
	r.s.designs[design.ID] = *design

	return nil
}

func (r memDesigns) FindDesignByID(_ context.Context, id uuid.UUID) (*entity.UserDesign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	design, ok := r.s.designs[id]
	if !ok {
		return nil, repository.ErrDesignNotFound
	}

	return &design, nil
}

func (r memDesigns) FindDesignByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.UserDesign, error) {
	return r.FindDesignByID(ctx, id)
}

func (r memDesigns) FindDesignsByUser(_ context.Context, userID uuid.UUID) ([]*entity.UserDesign, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.UserDesign
	for _, design := range r.s.designs {
		if design.UserID == userID {
			result = append(result, &design)
		}
	}
	slices.SortFunc(result, func(a, b *entity.UserDesign) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (r memDesigns) UpdateDesign(_ context.Context, design *entity.UserDesign) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.designs[design.ID]; !ok {
		return repository.ErrDesignNotFound
	}
	r.s.designs[design.ID] = *design

	return nil
}

func (r memDesigns) DeleteDesign(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.designs[id]; !ok {
		return repository.ErrDesignNotFound
	}
	delete(r.s.designs, id)

	return nil
}

// Orders

type memOrders struct{ s *memStore }

func (r memOrders) CreateOrder(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.orders {
		if existing.Code == order.Code {
			return repository.ErrDuplicateIdentifier
		}
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = r.s.tick()
	r.s.orders[order.ID] = *order

	return nil
}

func (r memOrders) FindOrderByCode(_ context.Context, code string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, order := range r.s.orders {
		if order.Code == code {
			return &order, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r memOrders) FindOrderByCodeForUpdate(ctx context.Context, code string) (*entity.Order, error) {
	return r.FindOrderByCode(ctx, code)
}

func (r memOrders) FindOrders(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var result []*entity.Order
	for _, order := range r.s.orders {
		if filter.UserID != nil && order.UserID != *filter.UserID {
			continue
		}
		if filter.ActiveOnly && !order.IsActive {
			continue
		}
		result = append(result, &order)
	}
	slices.SortFunc(result, func(a, b *entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}

	return result, nil
}

func (r memOrders) UpdateOrder(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[order.ID]; !ok {
		return repository.ErrOrderNotFound
	}
	r.s.orders[order.ID] = *order

	return nil
}

// Fixtures

func (s *memStore) nextCode(t *testing.T, prefix string) string {
	t.Helper()

	code, err := (memIdentifiers{s}).Allocate(context.Background(), prefix)
	if err != nil {
		t.Fatalf("allocate %s: %v", prefix, err)
	}

	return code
}

func (s *memStore) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Code:     s.nextCode(t, identifier.PrefixUser),
		Username: email,
		Email:    email,
		Role:     entity.RoleUser,
		IsActive: true,
		Consent:  true,
	}
	if err := (memUsers{s}).Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return user
}

func (s *memStore) seedProduct(t *testing.T, sizes ...entity.Size) *entity.ApparelProduct {
	t.Helper()

	if len(sizes) == 0 {
		sizes = []entity.Size{entity.SizeS, entity.SizeM, entity.SizeL}
	}
	product := &entity.ApparelProduct{
		Code:         s.nextCode(t, identifier.PrefixProduct),
		Name:         "Classic Tee",
		ApparelType:  entity.ApparelTShirt,
		Sizes:        sizes,
		ColorOptions: []string{"black", "white"},
		PrintMethods: []entity.PrintMethod{entity.PrintScreen},
		IsActive:     true,
	}
	if err := (memProducts{s}).CreateProduct(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	return product
}

func (s *memStore) seedPricingRule(t *testing.T, productID uuid.UUID, base, printCost, ai, upload string) {
	t.Helper()

	rule := &entity.PricingRule{
		ProductID:        productID,
		BasePrice:        decimal.RequireFromString(base),
		PrintCost:        decimal.RequireFromString(printCost),
		AIDesignCost:     decimal.RequireFromString(ai),
		CustomUploadCost: decimal.RequireFromString(upload),
	}
	if err := (memPricingRules{s}).Upsert(context.Background(), rule); err != nil {
		t.Fatalf("seed pricing rule: %v", err)
	}
}

func (s *memStore) seedDesign(t *testing.T, userID, productID uuid.UUID, designType entity.DesignType, quantity int) *entity.UserDesign {
	t.Helper()

	design := &entity.UserDesign{
		Code:       s.nextCode(t, identifier.PrefixDesign),
		UserID:     userID,
		ProductID:  productID,
		DesignType: designType,
		Prompt:     "a fox in a spacesuit",
		Size:       entity.SizeM,
		Color:      "black",
		Quantity:   quantity,
		IsDraft:    true,
	}
	if err := (memDesigns{s}).CreateDesign(context.Background(), design); err != nil {
		t.Fatalf("seed design: %v", err)
	}

	return design
}

func (s *memStore) seedAddress(t *testing.T, userID uuid.UUID, kind entity.AddressKind, isDefault bool) *entity.Address {
	t.Helper()

	address := &entity.Address{
		Code:      s.nextCode(t, identifier.PrefixAddress),
		UserID:    userID,
		Kind:      kind,
		FullName:  "Ada Lovelace",
		Street:    "12 Analytical Row",
		City:      "London",
		Country:   "UK",
		IsDefault: isDefault,
	}
	if err := (memAddresses{s}).CreateAddress(context.Background(), address); err != nil {
		t.Fatalf("seed address: %v", err)
	}

	return address
}

func (s *memStore) defaultCount(userID uuid.UUID, kind entity.AddressKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, address := range s.addresses {
		if address.UserID == userID && address.Kind == kind && address.IsDefault {
			count++
		}
	}

	return count
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event *entity.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []entity.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]entity.EventType, 0, len(p.events))
	for _, event := range p.events {
		result = append(result, event.Type)
	}

	return result
}

func (p *recordingPublisher) last() *entity.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.events) == 0 {
		return nil
	}

	return p.events[len(p.events)-1]
}

var errStoreUnavailable = errors.New("store unavailable")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: maxActiveSessions,
			OTPTTL:            10 * time.Minute,
			PasswordResetTTL:  time.Hour,
		},
		Pricing: &config.PricingConfig{
			DefaultShippingFee:    "10.00",
			EstimatedDeliveryDays: 5,
		},
		Frontend: &config.FrontendConfig{BaseURL: "https://shop.example.com"},
	}
}
