package model

import (
	"time"

	"github.com/google/uuid"
)

// FAQModel mirrors the 'faqs' table.
type FAQModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FAQModel) TableName() string {
	return "faqs"
}

// PrivacyPolicyModel mirrors the 'privacy_policies' table. The table holds a
// single row that is replaced on update.
type PrivacyPolicyModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Content   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrivacyPolicyModel) TableName() string {
	return "privacy_policies"
}
