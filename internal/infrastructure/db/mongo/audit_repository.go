package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

const auditCollection = "audit_log"

// AuditRepository implements ports.AuditStore using MongoDB. The collection
// is append-only: this type exposes no update or delete path, and none may
// be added.
type AuditRepository struct {
	coll *mongo.Collection
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditStore {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

// Insert persists one immutable audit entry.
func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert audit entry: %w: %w", domain.ErrAuditWriteFailed, err)
	}
	return nil
}
