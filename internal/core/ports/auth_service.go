package ports

import (
	"context"

	"github.com/pizzastore/auth-system/internal/core/domain"
)

// RegisterInput carries a customer registration as submitted at the boundary.
// Address2 may be empty; Zip is a string to preserve leading zeros.
type RegisterInput struct {
	FirstName string
	LastName  string
	Phone     string
	Address1  string
	Address2  string
	City      string
	State     string
	Zip       string
	Email     string
	Password  string
}

// SanitizedUser is the outward-facing view of a principal: no password
// digest, ever. Role is "Customer" for customers and the stored role string
// for workers; it is empty on registration responses.
type SanitizedUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

// SessionStatus describes whether a session identifies a signed-in principal.
type SessionStatus struct {
	LoggedIn bool
	UserID   string
	Role     string
	Email    string
}

// AuthService orchestrates identification, sign-in, session status, logout
// and customer registration. Each call is independent; only the session
// carries state across calls.
type AuthService interface {
	// Identify classifies the email; domain.ErrInvalidEmail when it cannot.
	Identify(ctx context.Context, email string) (domain.LoginType, error)
	// SignIn authenticates against the store matching kind and, on success,
	// writes the principal's identity into the session. Type mismatch,
	// missing record and bad password all collapse to
	// domain.ErrInvalidCredentials.
	SignIn(ctx context.Context, kind domain.LoginType, username, password, sessionID string) (*SanitizedUser, error)
	Status(ctx context.Context, sessionID string) (*SessionStatus, error)
	// Logout invalidates the session; idempotent.
	Logout(ctx context.Context, sessionID string) error
	// Register creates a customer plus address as one unit;
	// domain.ErrEmailTaken when the email is already registered. It never
	// signs the new customer in.
	Register(ctx context.Context, input RegisterInput) (*SanitizedUser, error)
}
