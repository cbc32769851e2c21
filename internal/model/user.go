package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an administrative account. Guests book without accounts; the
// users table only backs the admin dashboard endpoints.
type User struct {
	ID           uuid.UUID `json:"user_id"`  // users.user_id
	Username     string    `json:"username"` // users.username
	Email        string    `json:"email"`    // users.email
	PasswordHash string    `json:"-"`        // users.password_hash
	Role         string    `json:"role"`     // users.role
	CreatedAt    time.Time `json:"created_at"`
}
