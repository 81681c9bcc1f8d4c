package ports

import (
	"context"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

// LoginInput carries the credentials and request metadata for a login attempt.
type LoginInput struct {
	Username   string
	Password   string
	RememberMe bool
	Origin     domain.Origin
}

// LoginResult is the session plus the bearer token minted for API clients.
type LoginResult struct {
	Session *domain.Session
	Token   string
}

// AuthService implements login and logout on top of sessions and tokens.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string, actor *domain.Identity, origin domain.Origin) error
	LogoutAll(ctx context.Context, actor *domain.Identity, origin domain.Origin) error
	RevokeUserSessions(ctx context.Context, targetUserID int64, actor *domain.Identity, origin domain.Origin) error
}
