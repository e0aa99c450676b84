package handler_test

import (
	"net/http"
	"testing"

	"apparel/internal/delivery/api/router/handler"
	"apparel/internal/domain/entity"
	mockUsecase "apparel/internal/mocks/usecase"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogAPI(t *testing.T) (*apiFixture, *mockUsecase.MockCatalogUsecase) {
	t.Helper()

	fx := newAPIFixture(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC})

	fx.e.GET("/catalog/products", h.ListProducts)
	fx.admin.GET("/products", h.ListProducts)
	fx.admin.POST("/products", h.CreateProduct)
	fx.admin.PUT("/products/:id/pricing-rule", h.UpsertPricingRule)

	return fx, catalogUC
}

func TestCatalogHandler_ListProducts_PublicSeesActiveOnly(t *testing.T) {
	fx, catalogUC := newCatalogAPI(t)

	catalogUC.EXPECT().ListProducts(mock.Anything, false).Return([]*entity.ApparelProduct{
		{ID: uuid.New(), Code: "P-101", Name: "Classic Tee", IsActive: true, PricingRule: &entity.PricingRule{
			BasePrice: decimal.RequireFromString("12.5"),
		}},
	}, nil)

	rec := fx.do(http.MethodGet, "/catalog/products", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []handler.ProductResponse
	decode(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "12.50", body[0].PricingRule.BasePrice)
}

func TestCatalogHandler_ListProducts_AdminIncludesInactive(t *testing.T) {
	fx, catalogUC := newCatalogAPI(t)

	catalogUC.EXPECT().ListProducts(mock.Anything, true).Return(nil, nil)

	rec := fx.do(http.MethodGet, "/admin/products", adminToken, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	fx, catalogUC := newCatalogAPI(t)

	catalogUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.ApparelType == entity.ApparelHoodie &&
				assert.ObjectsAreEqual([]entity.Size{entity.SizeM, entity.SizeXXL}, in.Sizes) &&
				assert.ObjectsAreEqual([]entity.PrintMethod{entity.PrintEmbroidery}, in.PrintMethods) &&
				in.IsActive == nil
		})).
		Return(&entity.ApparelProduct{ID: uuid.New(), Code: "P-102", IsActive: true}, nil)

	rec := fx.do(http.MethodPost, "/admin/products", adminToken, map[string]any{
		"name":          "Zip Hoodie",
		"apparel_type":  "HOODIE",
		"sizes":         []string{"M", "XXL"},
		"color_options": []string{"grey"},
		"print_methods": []string{"em"},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCatalogHandler_CreateProduct_InvalidSize(t *testing.T) {
	fx, _ := newCatalogAPI(t)

	rec := fx.do(http.MethodPost, "/admin/products", adminToken, map[string]any{
		"name":          "Zip Hoodie",
		"apparel_type":  "HOODIE",
		"sizes":         []string{"M", "XS"},
		"color_options": []string{"grey"},
		"print_methods": []string{"em"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec, nil).Error.Details, "sizes[1] must be one of S, M, L, XL or XXL")
}

func TestCatalogHandler_UpsertPricingRule(t *testing.T) {
	fx, catalogUC := newCatalogAPI(t)

	productID := uuid.New()
	catalogUC.EXPECT().
		UpsertPricingRule(mock.Anything, productID, mock.MatchedBy(func(in *usecase.PricingRuleInput) bool {
			return in.BasePrice.Equal(decimal.RequireFromString("12.50")) &&
				in.PrintCost.Equal(decimal.RequireFromString("3")) &&
				in.AIDesignCost.Equal(decimal.RequireFromString("4.99")) &&
				in.CustomUploadCost.IsZero()
		})).
		Return(&entity.PricingRule{ProductID: productID, BasePrice: decimal.RequireFromString("12.5")}, nil)

	rec := fx.do(http.MethodPut, "/admin/products/"+productID.String()+"/pricing-rule", adminToken, map[string]any{
		"base_price":         "12.50",
		"print_cost":         "3",
		"ai_design_cost":     "4.99",
		"custom_upload_cost": "0",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body handler.PricingRuleResponse
	decode(t, rec, &body)
	assert.Equal(t, "12.50", body.BasePrice)
}
