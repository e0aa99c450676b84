package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The shipping address is copied into ship_* columns at placement.
type OrderModel struct {
	ID                    uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code                  string               `gorm:"type:varchar(32);not null;uniqueIndex"`
	UserID                uuid.UUID            `gorm:"type:uuid;not null;index"`
	DesignID              uuid.UUID            `gorm:"type:uuid;not null;index"`
	ProductID             uuid.UUID            `gorm:"type:uuid;not null"`
	DesignType            string               `gorm:"type:varchar(10);not null"`
	ShippingAddress       AddressSnapshotModel `gorm:"embedded;embeddedPrefix:ship_"`
	Quantity              int                  `gorm:"not null"`
	PaymentStatus         string               `gorm:"type:varchar(10);not null;default:'Unpaid'"`
	Status                string               `gorm:"type:varchar(20);not null;index"`
	Tracking              string               `gorm:"type:varchar(20);not null"`
	Subtotal              decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	Discount              decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	ShippingFee           decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	Total                 decimal.Decimal      `gorm:"type:numeric(12,2);not null"`
	EstimatedDeliveryDate time.Time            `gorm:"type:date"`
	IsActive              bool                 `gorm:"not null;default:true"`
	CancelledAt           *time.Time
	CreatedAt             time.Time `gorm:"index"`
	UpdatedAt             time.Time
}

// AddressSnapshotModel holds the embedded shipping address columns of an order.
type AddressSnapshotModel struct {
	FullName      string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(32)"`
	Email         string `gorm:"type:varchar(255)"`
	Street        string `gorm:"type:text"`
	City          string `gorm:"type:varchar(100)"`
	PostalCode    string `gorm:"type:varchar(20)"`
	ProvinceState string `gorm:"type:varchar(100)"`
	Country       string `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// IdentifierSequenceModel is the 'identifier_sequences' table: the last value issued per prefix.
type IdentifierSequenceModel struct {
	Prefix    string `gorm:"type:varchar(8);primary_key"`
	LastValue int64  `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentifierSequenceModel) TableName() string {
	return "identifier_sequences"
}
