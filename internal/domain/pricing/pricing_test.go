package pricing

import (
	"testing"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testRule() *entity.PricingRule {
	return &entity.PricingRule{
		BasePrice:        dec("20.00"),
		PrintCost:        dec("8.00"),
		AIDesignCost:     dec("2.00"),
		CustomUploadCost: dec("5.50"),
	}
}

func TestPriceOrder_AIDesignScenario(t *testing.T) {
	got, err := PriceOrder(Input{DesignType: entity.DesignTypeAI, Quantity: 3}, testRule())
	require.NoError(t, err)

	assert.True(t, dec("30.00").Equal(got.PerItem), "per item %s", got.PerItem)
	assert.True(t, dec("90.00").Equal(got.Subtotal), "subtotal %s", got.Subtotal)
	assert.True(t, dec("10.00").Equal(got.ShippingFee), "shipping %s", got.ShippingFee)
	assert.True(t, dec("100.00").Equal(got.Total), "total %s", got.Total)
}

func TestPriceOrder_CustomUploadUsesUploadCost(t *testing.T) {
	got, err := PriceOrder(Input{DesignType: entity.DesignTypeCustom, Quantity: 2}, testRule())
	require.NoError(t, err)

	assert.True(t, dec("33.50").Equal(got.PerItem))
	assert.True(t, dec("67.00").Equal(got.Subtotal))
	assert.True(t, dec("77.00").Equal(got.Total))
}

func TestPriceOrder_TotalIdentity(t *testing.T) {
	fees := []string{"0", "4.99", "10", "25.25"}
	discounts := []string{"0", "1.10", "15"}

	for qty := 1; qty <= 5; qty++ {
		for _, f := range fees {
			for _, d := range discounts {
				fee := dec(f)
				in := Input{DesignType: entity.DesignTypeAI, Quantity: qty, Discount: dec(d), ShippingFee: &fee}
				got, err := PriceOrder(in, testRule())
				require.NoError(t, err)
				want := got.Subtotal.Sub(got.Discount).Add(got.ShippingFee)
				assert.True(t, want.Equal(got.Total), "qty=%d fee=%s discount=%s", qty, f, d)
			}
		}
	}
}

func TestPriceOrder_MissingRule(t *testing.T) {
	_, err := PriceOrder(Input{DesignType: entity.DesignTypeAI, Quantity: 1}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPricingRuleMissing))
	assert.Contains(t, err.Error(), "configuration missing")
}

func TestPriceOrder_InvalidInput(t *testing.T) {
	negative := dec("-1")
	tests := []struct {
		name string
		in   Input
	}{
		{name: "zero quantity", in: Input{DesignType: entity.DesignTypeAI, Quantity: 0}},
		{name: "unknown design type", in: Input{DesignType: "sketch", Quantity: 1}},
		{name: "negative discount", in: Input{DesignType: entity.DesignTypeAI, Quantity: 1, Discount: dec("-5")}},
		{name: "negative shipping", in: Input{DesignType: entity.DesignTypeAI, Quantity: 1, ShippingFee: &negative}},
		{name: "discount above amount", in: Input{DesignType: entity.DesignTypeAI, Quantity: 1, Discount: dec("41")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PriceOrder(tt.in, testRule())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	order := &entity.Order{
		DesignType:  entity.DesignTypeAI,
		Quantity:    3,
		ShippingFee: DefaultShippingFee,
	}

	require.NoError(t, Apply(order, testRule()))
	first := *order
	require.NoError(t, Apply(order, testRule()))

	assert.True(t, first.Subtotal.Equal(order.Subtotal))
	assert.True(t, first.Total.Equal(order.Total))
	assert.True(t, dec("100").Equal(order.Total))
}
