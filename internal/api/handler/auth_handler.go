package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workshoppro/joborder-system/internal/api/metrics"
	"github.com/workshoppro/joborder-system/internal/api/middleware"
	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

// AuthHandler exposes login, logout and session revocation.
type AuthHandler struct {
	authService   ports.AuthService
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

// Login authenticates a user and returns a bearer token plus a session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Username:   req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
		Origin:     requestOrigin(c),
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	session := result.Session
	c.SetCookie(h.sessionCookie(session.ID, session.ExpiresAt))

	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		Session: sessionResponse{
			ID:        session.ID,
			CreatedAt: session.CreatedAt,
			ExpiresAt: session.ExpiresAt,
		},
		User: session.User,
	})
}

// Logout destroys the caller's session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	sessionID := middleware.SessionIDFrom(c)
	if sessionID == "" {
		// Bearer-authenticated caller may still carry a session cookie.
		if cookie, err := c.Cookie(domain.SessionCookieName); err == nil {
			sessionID = cookie.Value
		}
	}

	if sessionID != "" {
		if err := h.authService.Logout(c.Request().Context(), sessionID, identity, requestOrigin(c)); err != nil {
			return err
		}
	}

	c.SetCookie(h.expiredCookie())
	return c.NoContent(http.StatusNoContent)
}

// LogoutAll revokes every session of the calling user.
//
// @Summary      Logout everywhere
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout/all [post]
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.LogoutAll(c.Request().Context(), identity, requestOrigin(c)); err != nil {
		return err
	}

	c.SetCookie(h.expiredCookie())
	return c.NoContent(http.StatusNoContent)
}

// Me echoes the identity resolved for this request.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, identityResponse{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
		BranchID: identity.BranchID,
	})
}

// RevokeUserSessions revokes every session of the target user.
//
// @Summary      Revoke all sessions of a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Target user id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users/{id}/sessions [delete]
func (h *AuthHandler) RevokeUserSessions(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	if err := h.authService.RevokeUserSessions(c.Request().Context(), targetID, identity, requestOrigin(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) sessionCookie(id string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    id,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func requestOrigin(c echo.Context) domain.Origin {
	return domain.Origin{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}
