package ports

import (
	"context"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

// SessionService manages the session lifecycle on top of a SessionStore.
type SessionService interface {
	// Create mints a new session for the user. rememberMe selects the long
	// expiry window.
	Create(ctx context.Context, userID int64, rememberMe bool) (*domain.Session, error)
	// Validate resolves a session id. Expired sessions are deleted as a side
	// effect and reported as domain.ErrSessionNotFound; so is any storage
	// failure (fail-closed).
	Validate(ctx context.Context, id string) (*domain.Session, error)
	// Delete removes a session. Idempotent.
	Delete(ctx context.Context, id string) error
	// DeleteAllForUser revokes every session of the user. Idempotent.
	DeleteAllForUser(ctx context.Context, userID int64) error
}
