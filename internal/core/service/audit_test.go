package service

import (
	"testing"
	"time"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

type captureDispatcher struct {
	entries []*domain.AuditEntry
}

func (d *captureDispatcher) Enqueue(entry *domain.AuditEntry) {
	d.entries = append(d.entries, entry)
}

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestAuditRecorder_RecordUpdate(t *testing.T) {
	dispatcher := &captureDispatcher{}
	recorder := &auditRecorder{dispatcher: dispatcher, now: fixedClock()}

	actor := int64(5)
	entityID := int64(7)
	recorder.RecordUpdate(
		&actor, "Product", &entityID,
		map[string]any{"price": 10},
		map[string]any{"price": 12},
		"price adjustment",
		domain.Origin{IP: "10.0.0.1", UserAgent: "cli"},
		3,
	)

	if len(dispatcher.entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(dispatcher.entries))
	}
	entry := dispatcher.entries[0]

	if entry.Action != domain.AuditActionUpdate {
		t.Fatalf("expected update action, got %q", entry.Action)
	}
	if entry.ID == "" {
		t.Fatalf("entry id not assigned")
	}
	if entry.ActorID == nil || *entry.ActorID != 5 {
		t.Fatalf("unexpected actor: %v", entry.ActorID)
	}
	if entry.EntityType != "Product" || entry.EntityID == nil || *entry.EntityID != 7 {
		t.Fatalf("unexpected entity: %s %v", entry.EntityType, entry.EntityID)
	}
	if entry.OldValues["price"] != 10 || entry.NewValues["price"] != 12 {
		t.Fatalf("snapshots not preserved: old=%v new=%v", entry.OldValues, entry.NewValues)
	}
	if entry.Origin.IP != "10.0.0.1" || entry.BranchID != 3 {
		t.Fatalf("origin/branch not preserved: %+v", entry)
	}
	if entry.Timestamp.IsZero() {
		t.Fatalf("timestamp not assigned")
	}
}

func TestAuditRecorder_ShapeFields(t *testing.T) {
	dispatcher := &captureDispatcher{}
	recorder := &auditRecorder{dispatcher: dispatcher, now: fixedClock()}

	actor := int64(5)
	entityID := int64(9)
	origin := domain.Origin{IP: "10.0.0.1"}

	recorder.RecordCreate(&actor, "JobOrder", &entityID, map[string]any{"status": "open"}, "", origin, 1)
	recorder.RecordDelete(&actor, "JobOrder", &entityID, map[string]any{"status": "open"}, "", origin, 1)
	recorder.RecordAction(&actor, domain.AuditActionRevokeSessions, "User", &entityID, "offboarding", origin, 1)
	recorder.RecordAuthEvent(nil, domain.AuditActionLogin, "failed attempt", origin, 1)

	if len(dispatcher.entries) != 4 {
		t.Fatalf("expected four entries, got %d", len(dispatcher.entries))
	}

	create, del, action, auth := dispatcher.entries[0], dispatcher.entries[1], dispatcher.entries[2], dispatcher.entries[3]

	if create.OldValues != nil || create.NewValues == nil {
		t.Fatalf("create shape wrong: old=%v new=%v", create.OldValues, create.NewValues)
	}
	if del.NewValues != nil || del.OldValues == nil {
		t.Fatalf("delete shape wrong: old=%v new=%v", del.OldValues, del.NewValues)
	}
	if action.OldValues != nil || action.NewValues != nil {
		t.Fatalf("action shape must carry no snapshots")
	}
	if auth.ActorID != nil {
		t.Fatalf("auth event actor must stay nil for unauthenticated events")
	}
	if auth.EntityType != "" || auth.EntityID != nil {
		t.Fatalf("auth event must carry no entity")
	}
}

func TestAuditRecorder_UniqueIDs(t *testing.T) {
	dispatcher := &captureDispatcher{}
	recorder := &auditRecorder{dispatcher: dispatcher, now: fixedClock()}

	for i := 0; i < 10; i++ {
		recorder.RecordAuthEvent(nil, domain.AuditActionLogin, "", domain.Origin{}, 0)
	}

	seen := make(map[string]struct{}, len(dispatcher.entries))
	for _, entry := range dispatcher.entries {
		if _, dup := seen[entry.ID]; dup {
			t.Fatalf("duplicate entry id %s", entry.ID)
		}
		seen[entry.ID] = struct{}{}
	}
}
