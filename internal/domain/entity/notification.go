package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted broadcast message delivered to user devices
// via push. Delivery is fire-and-forget; the record is the source of truth
// for what was sent.
type Notification struct {
	ID        uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
}
