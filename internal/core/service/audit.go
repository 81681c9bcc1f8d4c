package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

// auditRecorder builds immutable audit entries and hands them to the
// dispatcher. This type is the absorption boundary of the audit trail: from
// here on, failures are logged and counted inside the pipeline and can
// neither block nor alter the outcome of the operation being audited.
type auditRecorder struct {
	dispatcher ports.AuditDispatcher
	now        func() time.Time
}

// NewAuditRecorder returns an AuditRecorder writing through the dispatcher.
func NewAuditRecorder(dispatcher ports.AuditDispatcher) ports.AuditRecorder {
	return &auditRecorder{
		dispatcher: dispatcher,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *auditRecorder) RecordCreate(actor *int64, entityType string, entityID *int64, newValues map[string]any, details string, origin domain.Origin, branchID int64) {
	r.record(&domain.AuditEntry{
		ActorID:    actor,
		Action:     domain.AuditActionCreate,
		EntityType: entityType,
		EntityID:   entityID,
		NewValues:  newValues,
		Details:    details,
		Origin:     origin,
		BranchID:   branchID,
	})
}

func (r *auditRecorder) RecordUpdate(actor *int64, entityType string, entityID *int64, oldValues, newValues map[string]any, details string, origin domain.Origin, branchID int64) {
	r.record(&domain.AuditEntry{
		ActorID:    actor,
		Action:     domain.AuditActionUpdate,
		EntityType: entityType,
		EntityID:   entityID,
		OldValues:  oldValues,
		NewValues:  newValues,
		Details:    details,
		Origin:     origin,
		BranchID:   branchID,
	})
}

func (r *auditRecorder) RecordDelete(actor *int64, entityType string, entityID *int64, oldValues map[string]any, details string, origin domain.Origin, branchID int64) {
	r.record(&domain.AuditEntry{
		ActorID:    actor,
		Action:     domain.AuditActionDelete,
		EntityType: entityType,
		EntityID:   entityID,
		OldValues:  oldValues,
		Details:    details,
		Origin:     origin,
		BranchID:   branchID,
	})
}

func (r *auditRecorder) RecordAction(actor *int64, action, entityType string, entityID *int64, details string, origin domain.Origin, branchID int64) {
	r.record(&domain.AuditEntry{
		ActorID:    actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Origin:     origin,
		BranchID:   branchID,
	})
}

func (r *auditRecorder) RecordAuthEvent(actor *int64, action, details string, origin domain.Origin, branchID int64) {
	r.record(&domain.AuditEntry{
		ActorID:  actor,
		Action:   action,
		Details:  details,
		Origin:   origin,
		BranchID: branchID,
	})
}

func (r *auditRecorder) record(entry *domain.AuditEntry) {
	entry.ID = uuid.NewString()
	entry.Timestamp = r.now()
	r.dispatcher.Enqueue(entry)
}
