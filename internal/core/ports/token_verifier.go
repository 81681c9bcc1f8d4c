package ports

import (
	"time"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

// TokenVerifier turns a raw Authorization header value into a resolved
// identity, and mints bearer tokens at login. Verification is pure CPU work:
// no I/O beyond the configured secret and the supplied header.
type TokenVerifier interface {
	Verify(rawHeader string) (*domain.Identity, error)
	Issue(user *domain.User, ttl time.Duration) (string, error)
}
