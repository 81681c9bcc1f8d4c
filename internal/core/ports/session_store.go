package ports

import (
	"context"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

// SessionStore is the persistence interface for session records. Backed by a
// key-value store with per-key atomicity; no multi-key transactions needed.
type SessionStore interface {
	// Create persists a new session keyed by its id.
	Create(ctx context.Context, session *domain.Session) error
	// Get returns the session or domain.ErrSessionNotFound.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete removes a session. Absence is not an error.
	Delete(ctx context.Context, id string) error
	// DeleteAllForUser removes every session owned by the user.
	DeleteAllForUser(ctx context.Context, userID int64) error
}
