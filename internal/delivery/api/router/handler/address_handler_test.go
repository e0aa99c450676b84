package handler_test

import (
	"net/http"
	"testing"

	"apparel/internal/delivery/api/router/handler"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	mockUsecase "apparel/internal/mocks/usecase"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressAPI(t *testing.T) (*apiFixture, *mockUsecase.MockAddressUsecase) {
	t.Helper()

	fx := newAPIFixture(t)
	addressUC := mockUsecase.NewMockAddressUsecase(t)
	h := handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addressUC})

	fx.authed.GET("/addresses/:kind", h.ListAddresses)
	fx.authed.POST("/addresses/:kind", h.CreateAddress)
	fx.authed.GET("/addresses/:kind/default", h.GetDefaultAddress)
	fx.authed.PUT("/addresses/:kind/:id", h.UpdateAddress)
	fx.authed.DELETE("/addresses/:kind/:id", h.DeleteAddress)

	return fx, addressUC
}

func TestAddressHandler_CreateAddress(t *testing.T) {
	fx, addressUC := newAddressAPI(t)

	isDefault := true
	addressUC.EXPECT().
		CreateAddress(mock.Anything, fx.userID, entity.AddressKindShipping, &usecase.AddressInput{
			FullName:   "Ada Lovelace",
			Phone:      "+44 20 7946 0958",
			Street:     "12 St James's Square",
			City:       "London",
			PostalCode: "SW1Y 4JH",
			Country:    "UK",
			IsDefault:  &isDefault,
		}).
		Return(&entity.Address{ID: uuid.New(), Code: "A-101", Kind: entity.AddressKindShipping, IsDefault: true}, nil)

	rec := fx.do(http.MethodPost, "/addresses/shipping", userToken, map[string]any{
		"full_name":   "Ada Lovelace",
		"phone":       "+44 20 7946 0958",
		"street":      "12 St James's Square",
		"city":        "London",
		"postal_code": "SW1Y 4JH",
		"country":     "UK",
		"is_default":  true,
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body handler.AddressResponse
	decode(t, rec, &body)
	assert.Equal(t, "A-101", body.Code)
	assert.True(t, body.IsDefault)
}

func TestAddressHandler_UnknownKind(t *testing.T) {
	fx, _ := newAddressAPI(t)

	rec := fx.do(http.MethodGet, "/addresses/holiday", userToken, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec, nil).Error.Details, "kind must be shipping or billing")
}

func TestAddressHandler_GetDefaultAddress_NotFound(t *testing.T) {
	fx, addressUC := newAddressAPI(t)

	addressUC.EXPECT().GetDefaultAddress(mock.Anything, fx.userID, entity.AddressKindBilling).
		Return(nil, domainerrors.ErrAddressNotFound)

	rec := fx.do(http.MethodGet, "/addresses/billing/default", userToken, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddressHandler_UpdateAddress_UnsetDefault(t *testing.T) {
	fx, addressUC := newAddressAPI(t)

	addressID := uuid.New()
	addressUC.EXPECT().UpdateAddress(mock.Anything, fx.userID, entity.AddressKindShipping, addressID, mock.Anything).
		Return(nil, domainerrors.ErrDefaultAddressRequired)

	rec := fx.do(http.MethodPut, "/addresses/shipping/"+addressID.String(), userToken, map[string]any{
		"full_name":   "Ada Lovelace",
		"phone":       "+44 20 7946 0958",
		"street":      "12 St James's Square",
		"city":        "London",
		"postal_code": "SW1Y 4JH",
		"country":     "UK",
		"is_default":  false,
	})

	assert.Equal(t, domainerrors.ErrDefaultAddressRequired.HTTPCode(), rec.Code)
	assert.Equal(t, errorCode(domainerrors.ErrDefaultAddressRequired), decode(t, rec, nil).Error.Code)
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	fx, addressUC := newAddressAPI(t)

	addressID := uuid.New()
	addressUC.EXPECT().DeleteAddress(mock.Anything, fx.userID, entity.AddressKindShipping, addressID).Return(nil)

	rec := fx.do(http.MethodDelete, "/addresses/shipping/"+addressID.String(), userToken, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
