package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/workshoppro/joborder-system/internal/api/metrics"
	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

const (
	identityContextKey  = "auth.identity"
	sessionIDContextKey = "auth.session_id"
)

// Auth resolves the caller's identity and injects it into the request
// context. Two credential transports are accepted: an Authorization bearer
// header (routed to the token verifier) and a session cookie (routed to the
// session manager). A request carrying neither is rejected before any
// downstream handler runs.
func Auth(verifier ports.TokenVerifier, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
				identity, err := verifier.Verify(header)
				if err != nil {
					metrics.AuthFailuresTotal.WithLabelValues(failureReason(err)).Inc()
					return err
				}
				c.Set(identityContextKey, identity)
				return next(c)
			}

			if cookie, err := c.Cookie(domain.SessionCookieName); err == nil && cookie.Value != "" {
				session, err := sessions.Validate(c.Request().Context(), cookie.Value)
				if err != nil {
					metrics.AuthFailuresTotal.WithLabelValues("session_not_found").Inc()
					return domain.ErrSessionNotFound
				}
				identity := session.Identity()
				c.Set(identityContextKey, &identity)
				c.Set(sessionIDContextKey, session.ID)
				return next(c)
			}

			metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
			return domain.ErrCredentialMissing
		}
	}
}

// IdentityFrom returns the identity resolved by Auth, or nil when the route
// was reached without it (misconfigured route group).
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityContextKey).(*domain.Identity)
	return identity
}

// SessionIDFrom returns the validated session id when the request
// authenticated via cookie, and "" for bearer requests.
func SessionIDFrom(c echo.Context) string {
	id, _ := c.Get(sessionIDContextKey).(string)
	return id
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCredentialMalformed):
		return "malformed"
	case errors.Is(err, domain.ErrCredentialExpired):
		return "expired"
	case errors.Is(err, domain.ErrServerMisconfigured):
		return "misconfigured"
	case errors.Is(err, domain.ErrCredentialMissing):
		return "missing"
	default:
		return "invalid"
	}
}
