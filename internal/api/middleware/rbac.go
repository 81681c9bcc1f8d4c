package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/workshoppro/joborder-system/internal/api/metrics"
	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/service"
)

// RequireRole enforces the per-route required-role set over the identity
// resolved by Auth. The set is declared where the route is registered; the
// gate itself grants nothing implicitly.
func RequireRole(required ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := service.Authorize(IdentityFrom(c), required...); err != nil {
				if errors.Is(err, domain.ErrForbiddenRole) {
					metrics.ForbiddenTotal.Inc()
				}
				return err
			}
			return next(c)
		}
	}
}
