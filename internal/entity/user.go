package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a document owner for data transfer between layers.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
