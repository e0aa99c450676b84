package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDesignModel is the GORM-specific struct for the 'user_designs' table.
type UserDesignModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code       string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	DesignType string    `gorm:"type:varchar(10);not null"`
	Prompt     string    `gorm:"type:text"`
	Artwork    string    `gorm:"type:text"`
	Font       string    `gorm:"type:varchar(100)"`
	Style      string    `gorm:"type:varchar(100)"`
	Size       string    `gorm:"type:varchar(5);not null"`
	Color      string    `gorm:"type:varchar(50)"`
	Quantity   int       `gorm:"not null;default:1"`
	IsDraft    bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDesignModel) TableName() string {
	return "user_designs"
}
