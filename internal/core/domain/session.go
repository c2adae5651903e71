package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// SessionData is the identity a successful sign-in writes into the
// server-side session. Absence of a UserID is definitionally "not logged in".
type SessionData struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}
