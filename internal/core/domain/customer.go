package domain

import (
	"errors"
	"time"
)

var ErrInvalidEmail = errors.New("a valid email address is required")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrEmailTaken = errors.New("an account with that email already exists")
var ErrCustomerNotFound = errors.New("customer not found")
var ErrWorkerNotFound = errors.New("worker not found")

// Customer models a registered customer account. PasswordHash is the bcrypt
// digest of the password and must never reach a client, hence json:"-".
type Customer struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	PasswordHash string    `json:"-"`
	Address      *Address  `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Address is owned by exactly one customer and is created together with it
// during registration. Zip stays a string to preserve leading zeros.
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}
