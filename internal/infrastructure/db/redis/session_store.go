package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

const (
	sessionKeyPrefix = "session:"
	userIndexPrefix  = "user_sessions:"
)

// SessionStore persists sessions in Redis. Each session lives under its own
// key with a TTL equal to its remaining lifetime, so the store never grows
// beyond the live session set even if a record is never validated again.
// A per-user index set supports revoke-all.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) ports.SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session store: %w: expiry not after creation", domain.ErrStorageUnavailable)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), payload, ttl)
	pipe.SAdd(ctx, userIndexKey(session.UserID), session.ID)
	// The index outlives its longest session by a day at most; stale ids in
	// it are skipped on revoke since their session keys are gone.
	pipe.Expire(ctx, userIndexKey(session.UserID), ttl+24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w: %w", domain.ErrStorageUnavailable, err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	// Fetch first so the user index can be pruned; a vanished record still
	// deletes cleanly (idempotent).
	session, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		// Fall through and delete the key blind.
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	if session != nil {
		pipe.SRem(ctx, userIndexKey(session.UserID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SessionStore) DeleteAllForUser(ctx context.Context, userID int64) error {
	ids, err := s.client.SMembers(ctx, userIndexKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("list sessions: %w: %w", domain.ErrStorageUnavailable, err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userIndexKey(userID))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete sessions: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func userIndexKey(userID int64) string {
	return fmt.Sprintf("%s%d", userIndexPrefix, userID)
}
