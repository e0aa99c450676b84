package handler

import (
	"net/http"

	"apparel/internal/delivery/api/middleware"
	"apparel/internal/delivery/api/response"
	"apparel/internal/domain/entity"
	"apparel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves products and, for admins, their pricing rules.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

type ProductRequest struct {
	Name         string   `json:"name" validate:"required,max=120"`
	ApparelType  string   `json:"apparel_type" validate:"required,oneof=T-SHIRT POLO SHIRT CAP HOODIE"`
	Sizes        []string `json:"sizes" validate:"required,min=1,dive,apparel_size"`
	ColorOptions []string `json:"color_options" validate:"required,min=1,dive,required"`
	PrintMethods []string `json:"print_methods" validate:"required,min=1,dive,oneof=em pr b"`
	Description  string   `json:"description" validate:"max=2000"`
	Image        string   `json:"image"`
	IsActive     *bool    `json:"is_active"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// PricingRuleRequest carries amounts as decimal strings, e.g. "12.50".
type PricingRuleRequest struct {
	BasePrice        string `json:"base_price" validate:"required,numeric"`
	PrintCost        string `json:"print_cost" validate:"required,numeric"`
	AIDesignCost     string `json:"ai_design_cost" validate:"required,numeric"`
	CustomUploadCost string `json:"custom_upload_cost" validate:"required,numeric"`
}

// ListProducts lists active products. Admins see inactive products too.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context(), middleware.IsAdmin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(products, newProductResponse))
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product))
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

func (h *CatalogHandler) SetProductActive(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetActiveRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.catalogUC.SetProductActive(c.Request().Context(), productID, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

func (h *CatalogHandler) ListPricingRules(c echo.Context) error {
	rules, err := h.catalogUC.ListPricingRules(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(rules, newPricingRuleResponse))
}

func (h *CatalogHandler) GetPricingRule(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.catalogUC.GetPricingRule(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPricingRuleResponse(rule))
}

func (h *CatalogHandler) UpsertPricingRule(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PricingRuleRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.catalogUC.UpsertPricingRule(c.Request().Context(), productID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPricingRuleResponse(rule))
}

func (h *CatalogHandler) DeletePricingRule(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeletePricingRule(c.Request().Context(), productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	input := &usecase.ProductInput{
		Name:         r.Name,
		ApparelType:  entity.ApparelType(r.ApparelType),
		ColorOptions: r.ColorOptions,
		Description:  r.Description,
		Image:        r.Image,
		IsActive:     r.IsActive,
	}
	for _, s := range r.Sizes {
		input.Sizes = append(input.Sizes, entity.Size(s))
	}
	for _, m := range r.PrintMethods {
		input.PrintMethods = append(input.PrintMethods, entity.PrintMethod(m))
	}

	return input
}

func (r *PricingRuleRequest) toInput() (*usecase.PricingRuleInput, error) {
	var (
		input usecase.PricingRuleInput
		err   error
	)
	if input.BasePrice, err = parseAmount("base_price", r.BasePrice); err != nil {
		return nil, err
	}
	if input.PrintCost, err = parseAmount("print_cost", r.PrintCost); err != nil {
		return nil, err
	}
	if input.AIDesignCost, err = parseAmount("ai_design_cost", r.AIDesignCost); err != nil {
		return nil, err
	}
	if input.CustomUploadCost, err = parseAmount("custom_upload_cost", r.CustomUploadCost); err != nil {
		return nil, err
	}

	return &input, nil
}
