package handler

import (
	"net/http"
	"strings"

	"apparel/internal/delivery/api/response"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/errors"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DesignHandlerParams holds dependencies for DesignHandler, injected by Fx.
type DesignHandlerParams struct {
	fx.In

	DesignUC usecase.DesignUsecase
}

// DesignHandler serves the user's designs. Create and update accept either
// JSON or a multipart form carrying an "artwork" file for custom designs.
type DesignHandler struct {
	designUC usecase.DesignUsecase
}

// NewDesignHandler is the constructor for DesignHandler
func NewDesignHandler(params DesignHandlerParams) *DesignHandler {
	return &DesignHandler{designUC: params.DesignUC}
}

type DesignRequest struct {
	ProductID  string `json:"product_id" form:"product_id" validate:"required,uuid"`
	DesignType string `json:"design_type" form:"design_type" validate:"required,oneof=ai custom"`
	Prompt     string `json:"prompt" form:"prompt" validate:"required_if=DesignType ai,max=1000"`
	Font       string `json:"font" form:"font" validate:"max=60"`
	Style      string `json:"style" form:"style" validate:"max=60"`
	Size       string `json:"size" form:"size" validate:"required,apparel_size"`
	Color      string `json:"color" form:"color" validate:"required,max=40"`
	Quantity   int    `json:"quantity" form:"quantity" validate:"required,min=1,max=10000"`
	IsDraft    bool   `json:"is_draft" form:"is_draft"`
	AddressID  string `json:"address_id" form:"address_id" validate:"omitempty,uuid"`
}

type SubmitDesignRequest struct {
	AddressID string `json:"address_id" validate:"omitempty,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1,max=10000"`
}

// DesignOrderResponse is a saved design and, when it was ordered, its order.
type DesignOrderResponse struct {
	Design *DesignResponse      `json:"design"`
	Price  *DesignPriceResponse `json:"price,omitempty"`
	Order  *OrderResponse       `json:"order,omitempty"`
}

type DesignPriceResponse struct {
	PerItem  string `json:"per_item"`
	Subtotal string `json:"subtotal"`
}

// DraftKeptDetails are the error details of a design that was saved as a
// draft but could not be ordered.
type DraftKeptDetails struct {
	Reason string          `json:"reason,omitempty"`
	Draft  *DesignResponse `json:"draft"`
}

func newDesignOrderResponse(output *usecase.DesignOutput) DesignOrderResponse {
	resp := DesignOrderResponse{
		Design: newDesignResponse(output.Design),
		Order:  newOrderResponse(output.Order),
	}
	if output.Price != nil {
		resp.Price = &DesignPriceResponse{
			PerItem:  money(output.Price.PerItem),
			Subtotal: money(output.Price.Subtotal),
		}
	}

	return resp
}

func (h *DesignHandler) CreateDesign(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := h.designInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.designUC.CreateDesign(c.Request().Context(), userID, input)
	if err != nil {
		if output != nil && output.Design != nil {
			return draftKept(c, err, output.Design)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDesignOrderResponse(output))
}

func (h *DesignHandler) ListDesigns(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	designs, err := h.designUC.ListDesigns(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(designs, newDesignResponse))
}

func (h *DesignHandler) GetDesign(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	designID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	design, err := h.designUC.GetDesign(c.Request().Context(), userID, designID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDesignResponse(design))
}

// GetArtwork streams the stored artwork; the content type is sniffed.
func (h *DesignHandler) GetArtwork(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	designID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data, err := h.designUC.GetArtwork(c.Request().Context(), userID, designID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}

// UpdateDesign edits a draft.
func (h *DesignHandler) UpdateDesign(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	designID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := h.designInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	design, err := h.designUC.UpdateDesign(c.Request().Context(), userID, designID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDesignResponse(design))
}

// SubmitDesign turns a draft into an order.
func (h *DesignHandler) SubmitDesign(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	designID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SubmitDesignRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := optionalUUID(req.AddressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.designUC.SubmitDesign(c.Request().Context(), userID, designID, &usecase.SubmitDesignInput{
		AddressID: addressID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newDesignOrderResponse(output))
}

func (h *DesignHandler) DeleteDesign(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	designID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.designUC.DeleteDesign(c.Request().Context(), userID, designID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *DesignHandler) designInput(c echo.Context) (*usecase.DesignInput, error) {
	var req DesignRequest
	if err := bindRequest(c, &req); err != nil {
		return nil, err
	}
	addressID, err := optionalUUID(req.AddressID)
	if err != nil {
		return nil, err
	}

	input := &usecase.DesignInput{
		ProductID:  uuid.MustParse(req.ProductID),
		DesignType: entity.DesignType(req.DesignType),
		Prompt:     req.Prompt,
		Font:       req.Font,
		Style:      req.Style,
		Size:       entity.Size(req.Size),
		Color:      req.Color,
		Quantity:   req.Quantity,
		IsDraft:    req.IsDraft,
		AddressID:  addressID,
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if input.Artwork, err = formUpload(c, "artwork"); err != nil {
			return nil, err
		}
	}

	return input, nil
}

// draftKept reports why ordering failed together with the draft that was saved.
func draftKept(c echo.Context, err error, draft *entity.UserDesign) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), DraftKeptDetails{
		Reason: appErr.Details(),
		Draft:  newDesignResponse(draft),
	})
}
