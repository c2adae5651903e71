package ports

import (
	"context"

	"github.com/pizzastore/auth-system/internal/core/domain"
)

// SessionStore persists per-client session state keyed by an opaque session
// ID. Expiry is owned by the store, not by this core.
type SessionStore interface {
	// Get returns domain.ErrSessionNotFound for unknown or expired IDs.
	Get(ctx context.Context, sessionID string) (*domain.SessionData, error)
	Set(ctx context.Context, sessionID string, data domain.SessionData) error
	// Invalidate removes the session. Deleting an absent session is not an error.
	Invalidate(ctx context.Context, sessionID string) error
}
