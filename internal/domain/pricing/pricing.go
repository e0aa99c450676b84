// Package pricing computes order amounts from a product's pricing rule.
package pricing

import (
	"fmt"

	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// DefaultShippingFee applies when an order does not specify its own fee.
var DefaultShippingFee = decimal.NewFromInt(10)

const amountScale = 2

// Input carries the order attributes that affect its price.
type Input struct {
	DesignType  entity.DesignType
	Quantity    int
	Discount    decimal.Decimal
	ShippingFee *decimal.Decimal // nil selects DefaultShippingFee.
}

// Breakdown is the result of pricing an order.
type Breakdown struct {
	PerItem     decimal.Decimal
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// PriceOrder computes per-item cost, subtotal and total.
//
//	per_item = base + print + (ai_cost | upload_cost)
//	subtotal = per_item * quantity
//	total    = subtotal - discount + shipping_fee
//
// A nil rule is a configuration error and never prices at zero.
func PriceOrder(in Input, rule *entity.PricingRule) (Breakdown, error) {
	if rule == nil {
		return Breakdown{}, domainerrors.ErrPricingRuleMissing
	}
	if in.Quantity < 1 {
		return Breakdown{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("quantity must be at least 1, got %d", in.Quantity))
	}

	var addOn decimal.Decimal
	switch in.DesignType {
	case entity.DesignTypeAI:
		addOn = rule.AIDesignCost
	case entity.DesignTypeCustom:
		addOn = rule.CustomUploadCost
	default:
		return Breakdown{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown design type %q", in.DesignType))
	}

	fee := DefaultShippingFee
	if in.ShippingFee != nil {
		fee = *in.ShippingFee
	}
	if fee.IsNegative() {
		return Breakdown{}, domainerrors.ErrValidationFailed.WithDetails("shipping fee cannot be negative")
	}
	if in.Discount.IsNegative() {
		return Breakdown{}, domainerrors.ErrValidationFailed.WithDetails("discount cannot be negative")
	}

	perItem := rule.BasePrice.Add(rule.PrintCost).Add(addOn).Round(amountScale)
	subtotal := perItem.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(amountScale)
	discount := in.Discount.Round(amountScale)
	fee = fee.Round(amountScale)

	if discount.GreaterThan(subtotal.Add(fee)) {
		return Breakdown{}, domainerrors.ErrValidationFailed.WithDetails("discount exceeds order amount")
	}

	return Breakdown{
		PerItem:     perItem,
		Subtotal:    subtotal,
		Discount:    discount,
		ShippingFee: fee,
		Total:       subtotal.Sub(discount).Add(fee),
	}, nil
}

// Apply prices order in place from its own quantity, design type, discount and shipping fee.
func Apply(order *entity.Order, rule *entity.PricingRule) error {
	fee := order.ShippingFee
	breakdown, err := PriceOrder(Input{
		DesignType:  order.DesignType,
		Quantity:    order.Quantity,
		Discount:    order.Discount,
		ShippingFee: &fee,
	}, rule)
	if err != nil {
		return err
	}

	order.Subtotal = breakdown.Subtotal
	order.Discount = breakdown.Discount
	order.ShippingFee = breakdown.ShippingFee
	order.Total = breakdown.Total

	return nil
}
