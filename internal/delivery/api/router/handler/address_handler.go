package handler

import (
	"net/http"

	"apparel/internal/delivery/api/response"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
}

// AddressHandler serves shipping and billing addresses under /addresses/:kind.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{addressUC: params.AddressUC}
}

type AddressRequest struct {
	FullName      string `json:"full_name" validate:"required,max=100"`
	Phone         string `json:"phone" validate:"required,phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Street        string `json:"street" validate:"required,max=200"`
	City          string `json:"city" validate:"required,max=100"`
	PostalCode    string `json:"postal_code" validate:"required,max=20"`
	ProvinceState string `json:"province_state" validate:"max=100"`
	Country       string `json:"country" validate:"required,max=60"`
	IsDefault     *bool  `json:"is_default"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName:      r.FullName,
		Phone:         r.Phone,
		Email:         r.Email,
		Street:        r.Street,
		City:          r.City,
		PostalCode:    r.PostalCode,
		ProvinceState: r.ProvinceState,
		Country:       r.Country,
		IsDefault:     r.IsDefault,
	}
}

func addressKind(c echo.Context) (entity.AddressKind, error) {
	kind := entity.AddressKind(c.Param("kind"))
	if !kind.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("kind must be shipping or billing")
	}

	return kind, nil
}

func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	kind, err := addressKind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID, kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(addresses, newAddressResponse))
}

func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	kind, err := addressKind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddressRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, kind, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAddressResponse(address))
}

func (h *AddressHandler) GetAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	kind, err := addressKind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), userID, kind, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

func (h *AddressHandler) GetDefaultAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	kind, err := addressKind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.GetDefaultAddress(c.Request().Context(), userID, kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	kind, err := addressKind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddressRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, kind, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	kind, err := addressKind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.SetDefaultAddress(c.Request().Context(), userID, kind, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressResponse(address))
}

func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	kind, err := addressKind(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	addressID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, kind, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
