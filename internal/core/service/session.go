package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

// sessionIDBytes gives 256 bits of entropy per id: collisions and guesses
// are negligible at any realistic session volume.
const sessionIDBytes = 32

type sessionService struct {
	store ports.SessionStore
	users ports.UserRepository
	log   zerolog.Logger
	now   func() time.Time
}

// NewSessionService returns a SessionService backed by the given store.
func NewSessionService(store ports.SessionStore, users ports.UserRepository, log zerolog.Logger) ports.SessionService {
	return &sessionService{
		store: store,
		users: users,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create mints a new session with a fresh opaque id and the denormalized
// projection of the owning user.
func (s *sessionService) Create(ctx context.Context, userID int64, rememberMe bool) (*domain.Session, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	ttl := domain.SessionTTL
	if rememberMe {
		ttl = domain.RememberMeTTL
	}

	now := s.now()
	session := &domain.Session{
		ID:        id,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		User: domain.UserProjection{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role,
			BranchID: user.BranchID,
		},
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Debug().Int64("user_id", user.ID).Bool("remember_me", rememberMe).Msg("session created")
	return session, nil
}

// Validate resolves a session id to its record. Expiry is enforced lazily:
// the first validation past the deadline deletes the record and reports it
// absent. Any storage failure is also reported as absent, never as an
// authenticated session (fail-closed).
func (s *sessionService) Validate(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Warn().Err(err).Msg("session lookup failed, treating as not authenticated")
		}
		return nil, domain.ErrSessionNotFound
	}

	if session.Expired(s.now()) {
		if err := s.store.Delete(ctx, id); err != nil {
			s.log.Warn().Err(err).Msg("failed to delete expired session")
		}
		return nil, domain.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes a session. Absence is not an error.
func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteAllForUser revokes every session owned by the user.
func (s *sessionService) DeleteAllForUser(ctx context.Context, userID int64) error {
	if err := s.store.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	s.log.Info().Int64("user_id", userID).Msg("all sessions revoked")
	return nil
}

// newSessionID returns a hex-encoded, fixed-length identifier drawn from the
// CSPRNG. Ids carry no structure and are unpredictable from prior ids or
// wall-clock time.
func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
