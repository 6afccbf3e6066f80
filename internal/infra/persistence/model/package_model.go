package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PackageModel mirrors the 'packages' table. Prices are stored in the
// currency's minor unit; DiscountedPrice is denormalized for list queries.
type PackageModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string         `gorm:"type:varchar(255);not null"`
	Description     string         `gorm:"type:text"`
	Price           int64          `gorm:"not null"`
	DiscountPercent int            `gorm:"not null;default:0"`
	DiscountedPrice int64          `gorm:"not null"`
	Features        pq.StringArray `gorm:"type:text[]"`
	ImageURLs       pq.StringArray `gorm:"type:text[]"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}
