package domain

// Role is the closed set of privilege levels an identity can hold.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleWorker  Role = "worker"
)

// ParseRole maps a raw claim value onto the closed role set.
// Anything outside the set is rejected, never synthesized into a role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleManager, RoleWorker:
		return Role(s), true
	}
	return "", false
}

// Identity is the resolved caller for a single request. It is rebuilt per
// request from a bearer token or a session and never persisted.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	BranchID int64  `json:"branch_id"`
}
