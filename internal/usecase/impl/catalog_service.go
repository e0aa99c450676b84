package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/identifier"
	"apparel/internal/domain/repository"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	productRepo     repository.ProductRepository
	pricingRuleRepo repository.PricingRuleRepository
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ProductRepo     repository.ProductRepository
	PricingRuleRepo repository.PricingRuleRepository
	Logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:       params.TxManager,
		productRepo:     params.ProductRepo,
		pricingRuleRepo: params.PricingRuleRepo,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListProducts(ctx context.Context, includeInactive bool) ([]*entity.ApparelProduct, error) {
	products, err := srv.productRepo.ListProducts(ctx, !includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct hides inactive products from the public catalog.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.ApparelProduct, error) {
	product, err := srv.findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// CreateProduct adds a product to the catalog under a new P-<n> code.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.ApparelProduct, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.ApparelProduct{IsActive: true}
	applyProductInput(product, input)

	err := executeWithIdentifierRetry(ctx, srv.txManager, srv.log(ctx), func(repoFactory repository.RepositoryFactory) error {
		code, err := repoFactory.NewIdentifierRepository().Allocate(ctx, identifier.PrefixProduct)
		if err != nil {
			return errors.Wrap(err, "failed to allocate product code")
		}
		product.Code = code

		return repoFactory.NewProductRepository().CreateProduct(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("code", product.Code))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.ProductInput) (*entity.ApparelProduct, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	applyProductInput(product, input)

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, translateProductError(err)
	}

	return product, nil
}

func (srv *catalogService) SetProductActive(ctx context.Context, productID uuid.UUID, active bool) (*entity.ApparelProduct, error) {
	product, err := srv.findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	product.IsActive = active
	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, translateProductError(err)
	}

	srv.log(ctx).Info("Product availability changed", slog.String("code", product.Code), slog.Bool("active", active))

	return product, nil
}

// UpsertPricingRule creates or replaces the single pricing rule of a product.
func (srv *catalogService) UpsertPricingRule(ctx context.Context, productID uuid.UUID, input *usecase.PricingRuleInput) (*entity.PricingRule, error) {
	if err := validatePricingRuleInput(input); err != nil {
		return nil, err
	}

	rule := &entity.PricingRule{
		ProductID:        productID,
		BasePrice:        input.BasePrice.Round(2),
		PrintCost:        input.PrintCost.Round(2),
		AIDesignCost:     input.AIDesignCost.Round(2),
		CustomUploadCost: input.CustomUploadCost.Round(2),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.findProduct(ctx, repoFactory.NewProductRepository(), productID); err != nil {
			return err
		}

		return repoFactory.NewPricingRuleRepository().Upsert(ctx, rule)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save pricing rule")
	}

	return rule, nil
}

func (srv *catalogService) GetPricingRule(ctx context.Context, productID uuid.UUID) (*entity.PricingRule, error) {
	rule, err := srv.pricingRuleRepo.FindByProductID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrPricingRuleNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("pricing rule not configured")
		}

		return nil, errors.Wrap(err, "failed to find pricing rule")
	}

	return rule, nil
}

func (srv *catalogService) DeletePricingRule(ctx context.Context, productID uuid.UUID) error {
	if err := srv.pricingRuleRepo.DeleteByProductID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrPricingRuleNotFound) {
			return domainerrors.ErrNotFound.WithDetails("pricing rule not configured")
		}

		return errors.Wrap(err, "failed to delete pricing rule")
	}

	return nil
}

func (srv *catalogService) ListPricingRules(ctx context.Context) ([]*entity.PricingRule, error) {
	rules, err := srv.pricingRuleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	return rules, nil
}

func (srv *catalogService) findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.ApparelProduct, error) {
	product, err := productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, translateProductError(err)
	}

	return product, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !input.ApparelType.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown apparel type %q", input.ApparelType))
	}
	if len(input.Sizes) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("at least one size is required")
	}
	for _, size := range input.Sizes {
		if !size.IsValid() {
			return domainerrors.ErrInvalidSize.WithDetails(fmt.Sprintf("%q is not a valid size", size))
		}
	}
	for _, method := range input.PrintMethods {
		if !method.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown print method %q", method))
		}
	}

	return nil
}

func validatePricingRuleInput(input *usecase.PricingRuleInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("pricing rule is required")
	}

	amounts := map[string]decimal.Decimal{
		"base_price":         input.BasePrice,
		"print_cost":         input.PrintCost,
		"ai_design_cost":     input.AIDesignCost,
		"custom_upload_cost": input.CustomUploadCost,
	}
	for name, amount := range amounts {
		if amount.IsNegative() {
			return domainerrors.ErrValidationFailed.WithDetails(name + " cannot be negative")
		}
	}

	return nil
}

func applyProductInput(product *entity.ApparelProduct, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.ApparelType = input.ApparelType
	product.Sizes = dedupeSizes(input.Sizes)
	product.ColorOptions = input.ColorOptions
	product.PrintMethods = input.PrintMethods
	product.Description = input.Description
	if input.Image != "" {
		product.Image = input.Image
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
}

// dedupeSizes drops repeated sizes and returns them in catalog order.
func dedupeSizes(sizes []entity.Size) []entity.Size {
	seen := make(map[entity.Size]bool, len(sizes))
	for _, size := range sizes {
		seen[size] = true
	}

	result := make([]entity.Size, 0, len(seen))
	for _, size := range entity.AllSizes {
		if seen[size] {
			result = append(result, size)
		}
	}

	return result
}

func translateProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	return errors.Wrap(err, "product repository error")
}
