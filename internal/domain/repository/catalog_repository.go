package repository

import (
	"context"
	"errors"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrProductNotFound is returned when an apparel product is not found.
	ErrProductNotFound = errors.New("apparel product not found")
	// ErrPricingRuleNotFound is returned when a product has no pricing rule.
	ErrPricingRuleNotFound = errors.New("pricing rule not found")
)

// ProductRepository persists apparel products and their sizes.
type ProductRepository interface {
	// CreateProduct persists a product together with its size set.
	CreateProduct(ctx context.Context, product *entity.ApparelProduct) error

	// FindProductByID retrieves a product with sizes and pricing rule.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.ApparelProduct, error)

	// ListProducts returns products oldest first; activeOnly hides inactive ones.
	ListProducts(ctx context.Context, activeOnly bool) ([]*entity.ApparelProduct, error)

	// UpdateProduct replaces product attributes and its size set.
	UpdateProduct(ctx context.Context, product *entity.ApparelProduct) error
}

// PricingRuleRepository persists the one pricing rule per product.
type PricingRuleRepository interface {
	// FindByProductID returns the rule for a product, or ErrPricingRuleNotFound.
	FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.PricingRule, error)

	// Upsert creates or replaces the rule of rule.ProductID.
	Upsert(ctx context.Context, rule *entity.PricingRule) error

	// DeleteByProductID removes the rule of a product.
	DeleteByProductID(ctx context.Context, productID uuid.UUID) error

	// List returns every pricing rule.
	List(ctx context.Context) ([]*entity.PricingRule, error)
}
