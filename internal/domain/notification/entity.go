package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted user-facing message. It is created as a side
// effect of a domain event and never mutated afterwards except the Read flag.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	Link      string
	Read      bool
	CreatedAt time.Time
}
