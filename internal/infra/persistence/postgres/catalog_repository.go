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
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// CreateProduct persists a product together with its size set.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.ApparelProduct) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("PricingRule").Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) && strings.Contains(pgConstraintName(err), "code") {
			return repository.ErrDuplicateIdentifier
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product with its pricing rule.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.ApparelProduct, error) {
	var productM model.ApparelProductModel
	if err := repo.db.WithContext(ctx).
		Preload("PricingRule").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListProducts returns products oldest first, which is code order.
func (repo *productRepository) ListProducts(ctx context.Context, activeOnly bool) ([]*entity.ApparelProduct, error) {
	query := repo.db.WithContext(ctx).Preload("PricingRule")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var productModels []*model.ApparelProductModel
	if err := query.Order("created_at ASC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.ApparelProduct, 0, len(productModels))
	for _, m := range productModels {
		products = append(products, toProductDomain(m))
	}

	return products, nil
}

// UpdateProduct replaces product attributes and its size set.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.ApparelProduct) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(&model.ApparelProductModel{ID: product.ID}).
		Select("name", "apparel_type", "sizes", "color_options", "print_methods", "description", "image",
			"is_active", "updated_at").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// pricingRuleRepository implements the repository.PricingRuleRepository interface.
type pricingRuleRepository struct {
	db *gorm.DB
}

// NewPricingRuleRepository is the constructor for pricingRuleRepository.
func NewPricingRuleRepository(db *gorm.DB) repository.PricingRuleRepository {
	return &pricingRuleRepository{db: db}
}

// FindByProductID returns the rule for a product.
func (repo *pricingRuleRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*entity.PricingRule, error) {
	var ruleM model.PricingRuleModel
	if err := repo.db.WithContext(ctx).Where("product_id = ?", productID).First(&ruleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPricingRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find pricing rule")
	}

	return toPricingRuleDomain(&ruleM), nil
}

// Upsert creates or replaces the rule of rule.ProductID. The product_id unique index arbitrates.
func (repo *pricingRuleRepository) Upsert(ctx context.Context, rule *entity.PricingRule) error {
	ruleM := fromPricingRuleDomain(rule)
	if ruleM.ID == uuid.Nil {
		ruleM.ID = uuid.New()
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"base_price", "print_cost", "ai_design_cost", "custom_upload_cost", "updated_at",
		}),
	}).Create(ruleM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert pricing rule")
	}

	stored, err := repo.FindByProductID(ctx, rule.ProductID)
	if err != nil {
		return err
	}
	*rule = *stored

	return nil
}

// DeleteByProductID removes the rule of a product.
func (repo *pricingRuleRepository) DeleteByProductID(ctx context.Context, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PricingRuleModel{}, "product_id = ?", productID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pricing rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPricingRuleNotFound
	}

	return nil
}

// List returns every pricing rule.
func (repo *pricingRuleRepository) List(ctx context.Context) ([]*entity.PricingRule, error) {
	var ruleModels []*model.PricingRuleModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Find(&ruleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pricing rules")
	}

	rules := make([]*entity.PricingRule, 0, len(ruleModels))
	for _, m := range ruleModels {
		rules = append(rules, toPricingRuleDomain(m))
	}

	return rules, nil
}

func toProductDomain(data *model.ApparelProductModel) *entity.ApparelProduct {
	if data == nil {
		return nil
	}

	sizes := make([]entity.Size, 0, len(data.Sizes))
	for _, s := range data.Sizes {
		sizes = append(sizes, entity.Size(s))
	}
	methods := make([]entity.PrintMethod, 0, len(data.PrintMethods))
	for _, m := range data.PrintMethods {
		methods = append(methods, entity.PrintMethod(m))
	}

	return &entity.ApparelProduct{
		ID:           data.ID,
		Code:         data.Code,
		Name:         data.Name,
		ApparelType:  entity.ApparelType(data.ApparelType),
		Sizes:        sizes,
		ColorOptions: data.ColorOptions,
		PrintMethods: methods,
		Description:  data.Description,
		Image:        data.Image,
		IsActive:     data.IsActive,
		PricingRule:  toPricingRuleDomain(data.PricingRule),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.ApparelProduct) *model.ApparelProductModel {
	if data == nil {
		return nil
	}

	sizes := make([]string, 0, len(data.Sizes))
	for _, s := range data.Sizes {
		sizes = append(sizes, string(s))
	}
	methods := make([]string, 0, len(data.PrintMethods))
	for _, m := range data.PrintMethods {
		methods = append(methods, string(m))
	}
	colors := data.ColorOptions
	if colors == nil {
		colors = []string{}
	}

	return &model.ApparelProductModel{
		ID:           data.ID,
		Code:         data.Code,
		Name:         data.Name,
		ApparelType:  string(data.ApparelType),
		Sizes:        sizes,
		ColorOptions: colors,
		PrintMethods: methods,
		Description:  data.Description,
		Image:        data.Image,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toPricingRuleDomain(data *model.PricingRuleModel) *entity.PricingRule {
	if data == nil {
		return nil
	}

	return &entity.PricingRule{
		ID:               data.ID,
		ProductID:        data.ProductID,
		BasePrice:        data.BasePrice,
		PrintCost:        data.PrintCost,
		AIDesignCost:     data.AIDesignCost,
		CustomUploadCost: data.CustomUploadCost,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromPricingRuleDomain(data *entity.PricingRule) *model.PricingRuleModel {
	return &model.PricingRuleModel{
		ID:               data.ID,
		ProductID:        data.ProductID,
		BasePrice:        data.BasePrice,
		PrintCost:        data.PrintCost,
		AIDesignCost:     data.AIDesignCost,
		CustomUploadCost: data.CustomUploadCost,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
