package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the error taxonomy to deterministic HTTP status codes.
//   - Keeps response bodies minimal: the internal cause (signature mismatch
//     vs. malformed claim, storage outage vs. absent session) is logged but
//     never leaked to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Every credential failure collapses to the same 401 body; the concrete
	// cause stays in the logs.
	switch {
	case errors.Is(err, domain.ErrCredentialMissing),
		errors.Is(err, domain.ErrCredentialMalformed),
		errors.Is(err, domain.ErrCredentialExpired),
		errors.Is(err, domain.ErrCredentialInvalid),
		errors.Is(err, domain.ErrInvalidCredentials):
		log.Debug().Err(err).Str("path", c.Path()).Msg("authentication rejected")
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrSessionNotFound):
		log.Debug().Err(err).Str("path", c.Path()).Msg("session rejected")
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrForbiddenRole):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrServerMisconfigured):
		log.Error().Err(err).Msg("authentication secret not configured")
		return http.StatusInternalServerError, "internal server error"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
