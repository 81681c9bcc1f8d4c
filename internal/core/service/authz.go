package service

import "github.com/workshoppro/joborder-system/internal/core/domain"

// Authorize is the role gate: it allows iff the identity's role is a member
// of the required set. It must only be called with an identity already
// resolved by the verifier or the session manager; a nil identity is a
// missing credential, never a role to check against. There is no implicit
// superuser: a route that owners may always use must list RoleOwner in its
// required set.
func Authorize(identity *domain.Identity, required ...domain.Role) error {
	if identity == nil {
		return domain.ErrCredentialMissing
	}
	for _, role := range required {
		if identity.Role == role {
			return nil
		}
	}
	return domain.ErrForbiddenRole
}
