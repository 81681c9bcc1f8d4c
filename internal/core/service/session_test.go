package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]*domain.Session
	failWith error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, session *domain.Session) error {
	if s.failWith != nil {
		return s.failWith
	}
	clone := *session
	s.sessions[session.ID] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *session
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func (s *stubSessionStore) DeleteAllForUser(_ context.Context, userID int64) error {
	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
		}
	}
	return nil
}

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func testUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[int64]*domain.User{
		42: {
			ID:       42,
			Username: "alice",
			FullName: "Alice Cooper",
			Role:     domain.RoleManager,
			BranchID: 3,
			Active:   true,
		},
		7: {
			ID:       7,
			Username: "bob",
			FullName: "Bob Ross",
			Role:     domain.RoleWorker,
			BranchID: 1,
			Active:   true,
		},
	}}
}

func newTestSessionService(store *stubSessionStore, clock *time.Time) *sessionService {
	return &sessionService{
		store: store,
		users: testUserRepo(),
		log:   zerolog.Nop(),
		now:   func() time.Time { return *clock },
	}
}

func TestSessionService_Create_DefaultExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	session, err := svc.Create(context.Background(), 42, false)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got, want := session.ExpiresAt, session.CreatedAt.Add(24*time.Hour); !got.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, got)
	}
	if session.User.Username != "alice" || session.User.FullName != "Alice Cooper" {
		t.Fatalf("projection not populated: %+v", session.User)
	}
	if session.User.Role != domain.RoleManager || session.User.BranchID != 3 {
		t.Fatalf("projection role/branch wrong: %+v", session.User)
	}
}

func TestSessionService_Create_RememberMeExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	session, err := svc.Create(context.Background(), 42, true)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got, want := session.ExpiresAt, session.CreatedAt.Add(30*24*time.Hour); !got.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, got)
	}
}

func TestSessionService_Create_IDShape(t *testing.T) {
	now := time.Now().UTC()
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	first, err := svc.Create(context.Background(), 42, false)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := svc.Create(context.Background(), 42, false)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if len(first.ID) != sessionIDBytes*2 {
		t.Fatalf("expected %d-char id, got %d", sessionIDBytes*2, len(first.ID))
	}
	if first.ID == second.ID {
		t.Fatalf("two sessions got the same id")
	}
}

func TestSessionService_Create_UnknownUser(t *testing.T) {
	now := time.Now().UTC()
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	if _, err := svc.Create(context.Background(), 999, false); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSessionService_Validate_LazyExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	session, err := svc.Create(context.Background(), 42, true)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Valid immediately.
	got, err := svc.Validate(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if got.User.ID != 42 {
		t.Fatalf("unexpected projection: %+v", got.User)
	}

	// 31 days later the first validation deletes the record...
	now = now.Add(31 * 24 * time.Hour)
	if _, err := svc.Validate(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, ok := store.sessions[session.ID]; ok {
		t.Fatalf("expired session still in store")
	}

	// ...and the second finds nothing either.
	if _, err := svc.Validate(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second validate, got %v", err)
	}
}

func TestSessionService_Validate_Unknown(t *testing.T) {
	now := time.Now().UTC()
	svc := newTestSessionService(newStubSessionStore(), &now)

	if _, err := svc.Validate(context.Background(), "no-such-id"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Validate(context.Background(), ""); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for empty id, got %v", err)
	}
}

func TestSessionService_Validate_StorageFailureFailsClosed(t *testing.T) {
	now := time.Now().UTC()
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	session, err := svc.Create(context.Background(), 42, false)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	store.failWith = domain.ErrStorageUnavailable
	if _, err := svc.Validate(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("storage failure must read as not authenticated, got %v", err)
	}
}

func TestSessionService_Delete_Idempotent(t *testing.T) {
	now := time.Now().UTC()
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	session, err := svc.Create(context.Background(), 42, false)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), session.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), session.ID); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}

func TestSessionService_DeleteAllForUser(t *testing.T) {
	now := time.Now().UTC()
	store := newStubSessionStore()
	svc := newTestSessionService(store, &now)

	a1, _ := svc.Create(context.Background(), 42, false)
	a2, _ := svc.Create(context.Background(), 42, true)
	b1, _ := svc.Create(context.Background(), 7, false)

	if err := svc.DeleteAllForUser(context.Background(), 42); err != nil {
		t.Fatalf("DeleteAllForUser returned error: %v", err)
	}

	for _, id := range []string{a1.ID, a2.ID} {
		if _, err := svc.Validate(context.Background(), id); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Fatalf("session %s survived revoke-all", id)
		}
	}
	if _, err := svc.Validate(context.Background(), b1.ID); err != nil {
		t.Fatalf("unrelated user's session was revoked: %v", err)
	}
}
