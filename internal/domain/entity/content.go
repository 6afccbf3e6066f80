package entity

import (
	"time"

	"github.com/google/uuid"
)

// FAQ is an informational question/answer pair shown to users.
type FAQ struct {
	ID        uuid.UUID
	Question  string
	Answer    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrivacyPolicy is the single informational policy document.
// Only one current version exists; updates replace the content in place.
type PrivacyPolicy struct {
	ID        uuid.UUID
	Content   string
	UpdatedAt time.Time
}
