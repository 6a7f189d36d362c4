package model

import (
	"time"
)

// Admin is a separate principal kind. Login requires the stored secret key
// in addition to the password.
type Admin struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	SecretKey      string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
