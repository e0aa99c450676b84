package usecase

import (
	"context"

	"apparel/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DesignInput describes a design as submitted by its owner.
type DesignInput struct {
	ProductID  uuid.UUID
	DesignType entity.DesignType
	Prompt     string
	Font       string
	Style      string
	Size       entity.Size
	Color      string
	Quantity   int
	IsDraft    bool
	Artwork    *Upload    // Optional artwork for custom designs.
	AddressID  *uuid.UUID // Shipping address used when the design is ordered right away.
}

// SubmitDesignInput turns a draft into an order.
type SubmitDesignInput struct {
	AddressID *uuid.UUID
	Quantity  int // Zero keeps the design's quantity.
}

// DesignOutput is a saved design and, when it was not a draft, its order.
type DesignOutput struct {
	Design *entity.UserDesign
	Price  *DesignPrice
	Order  *entity.Order
}

// DesignPrice is what ordering a design costs before discount and shipping.
type DesignPrice struct {
	PerItem  decimal.Decimal
	Subtotal decimal.Decimal
}

// DesignUsecase manages customer designs.
type DesignUsecase interface {
	// CreateDesign returns the saved draft along with the error when the
	// design was saved but ordering it right away failed.
	CreateDesign(ctx context.Context, userID uuid.UUID, input *DesignInput) (*DesignOutput, error)
	ListDesigns(ctx context.Context, userID uuid.UUID) ([]*entity.UserDesign, error)
	GetDesign(ctx context.Context, userID, designID uuid.UUID) (*entity.UserDesign, error)
	UpdateDesign(ctx context.Context, userID, designID uuid.UUID, input *DesignInput) (*entity.UserDesign, error)
	SubmitDesign(ctx context.Context, userID, designID uuid.UUID, input *SubmitDesignInput) (*DesignOutput, error)
	DeleteDesign(ctx context.Context, userID, designID uuid.UUID) error
	// GetArtwork reads back the artwork uploaded for a custom design.
	GetArtwork(ctx context.Context, userID, designID uuid.UUID) ([]byte, error)
}
