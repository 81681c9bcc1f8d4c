package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/workshoppro/joborder-system/internal/api/middleware"
	"github.com/workshoppro/joborder-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a nil identity means the route was
// wired without Auth, which must read as "not authenticated", never as
// "allowed".
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.IdentityFrom(c)
	if identity == nil {
		return nil, domain.ErrCredentialMissing
	}
	return identity, nil
}
