package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// A partial unique index keeps at most one default per (user_id, kind).
type AddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code          string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_user_kind"`
	Kind          string    `gorm:"type:varchar(20);not null;index:idx_addresses_on_user_kind"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(32)"`
	Email         string    `gorm:"type:varchar(255)"`
	Street        string    `gorm:"type:text;not null"`
	City          string    `gorm:"type:varchar(100);not null"`
	PostalCode    string    `gorm:"type:varchar(20)"`
	ProvinceState string    `gorm:"type:varchar(100)"`
	Country       string    `gorm:"type:varchar(100);not null"`
	IsDefault     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
