package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(32)"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	// NULL when the account was never linked to Google. The partial unique
	// index keeps linked IDs unique without colliding on unlinked rows.
	GoogleID *string `gorm:"type:varchar(255);index:uq_users_google_id,unique,where:google_id IS NOT NULL"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'"`
	IsVerified   bool      `gorm:"not null;default:false"`
	IsActive     bool      `gorm:"not null;default:true"`
	OTPHash      string    `gorm:"type:varchar(255)"`
	OTPExpiresAt *time.Time
	FCMToken     string `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
