package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingRule is the cost schedule attached to exactly one product.
type PricingRule struct {
	ID               uuid.UUID       // The Global Unique Identifier (GUID) for the rule.
	ProductID        uuid.UUID       // The product this rule prices; unique.
	BasePrice        decimal.Decimal // Price of the blank garment.
	PrintCost        decimal.Decimal // Per-item printing cost.
	AIDesignCost     decimal.Decimal // Add-on for AI generated artwork.
	CustomUploadCost decimal.Decimal // Add-on for customer uploaded artwork.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
