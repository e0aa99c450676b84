package usecase

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput describes a catalog product as written by an admin.
type ProductInput struct {
	Name         string
	ApparelType  entity.ApparelType
	Sizes        []entity.Size
	ColorOptions []string
	PrintMethods []entity.PrintMethod
	Description  string
	Image        string
	IsActive     *bool // nil keeps the current value; new products default to active.
}

// PricingRuleInput holds the four cost components of a pricing rule.
type PricingRuleInput struct {
	BasePrice        decimal.Decimal
	PrintCost        decimal.Decimal
	AIDesignCost     decimal.Decimal
	CustomUploadCost decimal.Decimal
}

// CatalogUsecase manages apparel products and their pricing rules.
type CatalogUsecase interface {
	// ListProducts lists the catalog; includeInactive is for admins.
	ListProducts(ctx context.Context, includeInactive bool) ([]*entity.ApparelProduct, error)
	// GetProduct returns an active product with its pricing rule.
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.ApparelProduct, error)

	CreateProduct(ctx context.Context, input *ProductInput) (*entity.ApparelProduct, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *ProductInput) (*entity.ApparelProduct, error)
	SetProductActive(ctx context.Context, productID uuid.UUID, active bool) (*entity.ApparelProduct, error)

	UpsertPricingRule(ctx context.Context, productID uuid.UUID, input *PricingRuleInput) (*entity.PricingRule, error)
	GetPricingRule(ctx context.Context, productID uuid.UUID) (*entity.PricingRule, error)
	DeletePricingRule(ctx context.Context, productID uuid.UUID) error
	ListPricingRules(ctx context.Context) ([]*entity.PricingRule, error)
}
