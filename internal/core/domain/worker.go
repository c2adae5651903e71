package domain

import "time"

// Worker models an employee account. Role is a free-form string stored with
// the record ("Manager", "Driver", ...) and is copied into the session on
// sign-in.
type Worker struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
