package domain

import "time"

// Audit action verbs. Create/update/delete cover entity mutations; the rest
// are auth and administrative events.
const (
	AuditActionCreate         = "create"
	AuditActionUpdate         = "update"
	AuditActionDelete         = "delete"
	AuditActionLogin          = "login"
	AuditActionLogout         = "logout"
	AuditActionLogoutAll      = "logout_all"
	AuditActionRevokeSessions = "revoke_sessions"
)

// Origin carries the request metadata attached to every audit entry.
type Origin struct {
	IP        string `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
}

// AuditEntry is one immutable record of a security- or business-relevant
// action. Entries are written exactly once and never updated or deleted.
// ActorID is nil for unauthenticated or system events; EntityID and the
// value snapshots are nil where the shape of the action has no use for them.
type AuditEntry struct {
	ID         string         `json:"id" bson:"_id"`
	ActorID    *int64         `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Action     string         `json:"action" bson:"action"`
	EntityType string         `json:"entity_type,omitempty" bson:"entity_type,omitempty"`
	EntityID   *int64         `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	OldValues  map[string]any `json:"old_values,omitempty" bson:"old_values,omitempty"`
	NewValues  map[string]any `json:"new_values,omitempty" bson:"new_values,omitempty"`
	Details    string         `json:"details,omitempty" bson:"details,omitempty"`
	Origin     Origin         `json:"origin" bson:"origin"`
	BranchID   int64          `json:"branch_id" bson:"branch_id"`
	Timestamp  time.Time      `json:"timestamp" bson:"timestamp"`
}
