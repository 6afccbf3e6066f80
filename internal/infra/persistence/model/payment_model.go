package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. TransactionID carries the payment
// provider's intent ID and is unique so webhook replays cannot insert duplicates.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PackageID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount        int64     `gorm:"not null"`
	Currency      string    `gorm:"type:varchar(8);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	TransactionID string    `gorm:"type:varchar(255);unique;not null"`
	PaymentMethod string    `gorm:"type:varchar(50)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
