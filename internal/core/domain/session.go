package domain

import "time"

// Session lifetimes. A plain login gets the short window; remember-me gets
// the long one.
const (
	SessionTTL        = 24 * time.Hour
	RememberMeTTL     = 30 * 24 * time.Hour
	SessionCookieName = "session_id"
)

// UserProjection is the denormalized slice of the owning user stored inside
// the session record, so validation never touches the users collection.
type UserProjection struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
	BranchID int64  `json:"branch_id"`
}

// Session binds an opaque identifier to a user and an expiry. Immutable once
// created: it is only ever deleted, never updated.
type Session struct {
	ID        string         `json:"id"`
	UserID    int64          `json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      UserProjection `json:"user"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Identity builds the per-request identity from the stored projection.
func (s *Session) Identity() Identity {
	return Identity{
		UserID:   s.User.ID,
		Username: s.User.Username,
		Role:     s.User.Role,
		BranchID: s.User.BranchID,
	}
}
