package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Size is a garment size offered by a product.
type Size string

const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// AllSizes lists every size in display order.
var AllSizes = []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// IsValid checks if the Size is a valid value.
func (s Size) IsValid() bool {
	return slices.Contains(AllSizes, s)
}

// String returns the string representation of the Size.
func (s Size) String() string {
	return string(s)
}

// ApparelType is the garment category of a product.
type ApparelType string

const (
	ApparelTShirt ApparelType = "T-SHIRT"
	ApparelPolo   ApparelType = "POLO"
	ApparelShirt  ApparelType = "SHIRT"
	ApparelCap    ApparelType = "CAP"
	ApparelHoodie ApparelType = "HOODIE"
)

// IsValid checks if the ApparelType is a valid value.
func (t ApparelType) IsValid() bool {
	switch t {
	case ApparelTShirt, ApparelPolo, ApparelShirt, ApparelCap, ApparelHoodie:
		return true
	default:
		return false
	}
}

// PrintMethod is how artwork is applied to the garment.
type PrintMethod string

const (
	PrintEmbroidery PrintMethod = "em"
	PrintScreen     PrintMethod = "pr"
	PrintBoth       PrintMethod = "b"
)

// IsValid checks if the PrintMethod is a valid value.
func (p PrintMethod) IsValid() bool {
	switch p {
	case PrintEmbroidery, PrintScreen, PrintBoth:
		return true
	default:
		return false
	}
}

// ApparelProduct is a sellable garment that users design on.
type ApparelProduct struct {
	ID           uuid.UUID     // The Global Unique Identifier (GUID) for the product.
	Code         string        // Human-readable identifier, e.g. "P-101".
	Name         string        // Catalog name.
	ApparelType  ApparelType   // Garment category.
	Sizes        []Size        // Sizes a design may pick from.
	ColorOptions []string      // Garment colors offered.
	PrintMethods []PrintMethod // Supported print methods.
	Description  string
	Image        string       // Storage key of the catalog image.
	IsActive     bool         // Inactive products are hidden and cannot be designed on.
	PricingRule  *PricingRule // Nil when no rule has been configured.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasSize reports whether size is offered for this product.
func (p *ApparelProduct) HasSize(size Size) bool {
	return slices.Contains(p.Sizes, size)
}
