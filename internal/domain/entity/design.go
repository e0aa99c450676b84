package entity

import (
	"time"

	"github.com/google/uuid"
)

// DesignType selects where the artwork comes from. It decides which add-on cost applies.
type DesignType string

const (
	// DesignTypeAI is artwork generated from a text prompt.
	DesignTypeAI DesignType = "ai"
	// DesignTypeCustom is artwork uploaded by the customer.
	DesignTypeCustom DesignType = "custom"
)

// IsValid checks if the DesignType is a valid value.
func (d DesignType) IsValid() bool {
	return d == DesignTypeAI || d == DesignTypeCustom
}

// String returns the string representation of the DesignType.
func (d DesignType) String() string {
	return string(d)
}

// UserDesign is a customer's design request against a product.
type UserDesign struct {
	ID         uuid.UUID  // The Global Unique Identifier (GUID) for the design.
	Code       string     // Human-readable identifier, e.g. "D-101".
	UserID     uuid.UUID  // Owner of the design.
	ProductID  uuid.UUID  // Product the design is printed on.
	DesignType DesignType // AI generated or custom upload.
	Prompt     string     // Text prompt for AI designs.
	Artwork    string     // Storage key of uploaded or generated artwork.
	Font       string
	Style      string
	Size       Size   // Must be one of the product's sizes.
	Color      string // Garment color.
	Quantity   int    // Number of items ordered when the design is submitted.
	IsDraft    bool   // Drafts are editable and have no order.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
