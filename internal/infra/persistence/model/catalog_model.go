package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ApparelProductModel is the GORM-specific struct for the 'apparel_products' table.
type ApparelProductModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code         string            `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name         string            `gorm:"type:varchar(255);not null"`
	ApparelType  string            `gorm:"type:varchar(20);not null"`
	Sizes        []string          `gorm:"type:jsonb;serializer:json;not null"`
	ColorOptions []string          `gorm:"type:jsonb;serializer:json;not null"`
	PrintMethods []string          `gorm:"type:jsonb;serializer:json;not null"`
	Description  string            `gorm:"type:text"`
	Image        string            `gorm:"type:text"`
	IsActive     bool              `gorm:"not null;default:true"`
	PricingRule  *PricingRuleModel `gorm:"foreignKey:ProductID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApparelProductModel) TableName() string {
	return "apparel_products"
}

// PricingRuleModel is the GORM-specific struct for the 'pricing_rules' table. One row per product.
type PricingRuleModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	BasePrice        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PrintCost        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AIDesignCost     decimal.Decimal `gorm:"column:ai_design_cost;type:numeric(12,2);not null"`
	CustomUploadCost decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PricingRuleModel) TableName() string {
	return "pricing_rules"
}
