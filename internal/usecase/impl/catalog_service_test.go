package impl

import (
	"context"
	"testing"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (*memStore, usecase.CatalogUsecase) {
	t.Helper()

	store := newMemStore()
	srv := NewCatalogService(CatalogServiceParams{
		TxManager:       store,
		ProductRepo:     memProducts{store},
		PricingRuleRepo: memPricingRules{store},
		Logger:          newDiscardLogger(),
	})

	return store, srv
}

func teeInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:         " Classic Tee ",
		ApparelType:  entity.ApparelTShirt,
		Sizes:        []entity.Size{entity.SizeL, entity.SizeS, entity.SizeL},
		ColorOptions: []string{"black"},
		PrintMethods: []entity.PrintMethod{entity.PrintScreen, entity.PrintEmbroidery},
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	_, srv := createTestCatalogService(t)

	product, err := srv.CreateProduct(context.Background(), teeInput())
	require.NoError(t, err)

	assert.Equal(t, "P-101", product.Code)
	assert.Equal(t, "Classic Tee", product.Name)
	assert.Equal(t, []entity.Size{entity.SizeS, entity.SizeL}, product.Sizes, "sizes are deduplicated in catalog order")
	assert.True(t, product.IsActive)

	second, err := srv.CreateProduct(context.Background(), teeInput())
	require.NoError(t, err)
	assert.Equal(t, "P-102", second.Code)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *usecase.ProductInput)
		wantErr error
		details string
	}{
		{"missing name", func(in *usecase.ProductInput) { in.Name = " " }, domainerrors.ErrValidationFailed, "name"},
		{"unknown apparel type", func(in *usecase.ProductInput) { in.ApparelType = "SOCK" }, domainerrors.ErrValidationFailed, "SOCK"},
		{"no sizes", func(in *usecase.ProductInput) { in.Sizes = nil }, domainerrors.ErrValidationFailed, "size"},
		{"invalid size", func(in *usecase.ProductInput) { in.Sizes = []entity.Size{entity.SizeM, "XXXL"} }, domainerrors.ErrInvalidSize, `"XXXL"`},
		{"unknown print method", func(in *usecase.ProductInput) { in.PrintMethods = []entity.PrintMethod{"laser"} }, domainerrors.ErrValidationFailed, "laser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, srv := createTestCatalogService(t)
			input := teeInput()
			tt.mutate(input)

			product, err := srv.CreateProduct(context.Background(), input)

			assert.Nil(t, product)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.details)
			assert.Empty(t, store.products)
		})
	}
}

func TestCatalogService_ProductVisibility(t *testing.T) {
	_, srv := createTestCatalogService(t)

	visible, err := srv.CreateProduct(context.Background(), teeInput())
	require.NoError(t, err)
	hidden, err := srv.CreateProduct(context.Background(), teeInput())
	require.NoError(t, err)

	_, err = srv.SetProductActive(context.Background(), hidden.ID, false)
	require.NoError(t, err)

	_, err = srv.GetProduct(context.Background(), hidden.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound, "inactive products are hidden from the catalog")

	public, err := srv.ListProducts(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	all, err := srv.ListProducts(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, visible.ID, all[0].ID, "oldest first")

	_, err = srv.SetProductActive(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	_, srv := createTestCatalogService(t)
	product, err := srv.CreateProduct(context.Background(), teeInput())
	require.NoError(t, err)

	input := teeInput()
	input.Name = "Heavy Tee"
	input.Sizes = []entity.Size{entity.SizeXXL, entity.SizeM}
	input.IsActive = boolPtr(false)

	updated, err := srv.UpdateProduct(context.Background(), product.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Heavy Tee", updated.Name)
	assert.Equal(t, []entity.Size{entity.SizeM, entity.SizeXXL}, updated.Sizes)
	assert.False(t, updated.IsActive)
	assert.Equal(t, product.Code, updated.Code)
}

func TestCatalogService_PricingRules(t *testing.T) {
	_, srv := createTestCatalogService(t)
	product, err := srv.CreateProduct(context.Background(), teeInput())
	require.NoError(t, err)

	_, err = srv.GetPricingRule(context.Background(), product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound, "an unpriced product reports a missing rule")

	rule, err := srv.UpsertPricingRule(context.Background(), product.ID, &usecase.PricingRuleInput{
		BasePrice:        decimal.RequireFromString("19.999"),
		PrintCost:        decimal.RequireFromString("8"),
		AIDesignCost:     decimal.RequireFromString("2.004"),
		CustomUploadCost: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, "20.00", rule.BasePrice.StringFixed(2))
	assert.True(t, rule.AIDesignCost.Equal(decimal.RequireFromString("2.00")), "amounts are rounded to cents")

	_, err = srv.UpsertPricingRule(context.Background(), product.ID, &usecase.PricingRuleInput{
		BasePrice: decimal.RequireFromString("25"),
		PrintCost: decimal.RequireFromString("8"),
	})
	require.NoError(t, err)

	rules, err := srv.ListPricingRules(context.Background())
	require.NoError(t, err)
	require.Len(t, rules, 1, "a product has a single rule")
	assert.Equal(t, "25.00", rules[0].BasePrice.StringFixed(2))

	got, err := srv.GetPricingRule(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, rules[0].ID, got.ID)

	require.NoError(t, srv.DeletePricingRule(context.Background(), product.ID))
	assert.ErrorIs(t, srv.DeletePricingRule(context.Background(), product.ID), domainerrors.ErrNotFound)
}

func TestCatalogService_UpsertPricingRule_Validation(t *testing.T) {
	_, srv := createTestCatalogService(t)
	product, err := srv.CreateProduct(context.Background(), teeInput())
	require.NoError(t, err)

	_, err = srv.UpsertPricingRule(context.Background(), product.ID, &usecase.PricingRuleInput{
		BasePrice: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "base_price")

	_, err = srv.UpsertPricingRule(context.Background(), uuid.New(), &usecase.PricingRuleInput{
		BasePrice: decimal.RequireFromString("10"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
