package ports

import (
	"context"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

// AuditStore is the append-only persistence interface for audit entries.
type AuditStore interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditDispatcher decouples audit recording from persistence. Enqueue must
// never block the caller: implementations drop (and log) on overflow while
// preserving the causal order of entries for the same actor.
type AuditDispatcher interface {
	Enqueue(entry *domain.AuditEntry)
}

// AuditRecorder is the write-only trail of state-changing actions. Every
// method records exactly one immutable entry. Recording is strictly
// best-effort: persistence failures are logged and absorbed inside the
// audit pipeline and never surface to the business operation being audited.
type AuditRecorder interface {
	RecordCreate(actor *int64, entityType string, entityID *int64, newValues map[string]any, details string, origin domain.Origin, branchID int64)
	RecordUpdate(actor *int64, entityType string, entityID *int64, oldValues, newValues map[string]any, details string, origin domain.Origin, branchID int64)
	RecordDelete(actor *int64, entityType string, entityID *int64, oldValues map[string]any, details string, origin domain.Origin, branchID int64)
	RecordAction(actor *int64, action, entityType string, entityID *int64, details string, origin domain.Origin, branchID int64)
	RecordAuthEvent(actor *int64, action, details string, origin domain.Origin, branchID int64)
}
