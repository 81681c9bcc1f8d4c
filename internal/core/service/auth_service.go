package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/workshoppro/joborder-system/internal/core/domain"
	"github.com/workshoppro/joborder-system/internal/core/ports"
)

// AuthService implements login, logout and session revocation.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionService
	tokens   ports.TokenVerifier
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionService,
	tokens ports.TokenVerifier,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		audit:    audit,
		log:      log,
	}
}

// Login checks the password, creates a session and mints a bearer token.
// Unknown usernames, wrong passwords and inactive accounts are all reported
// as domain.ErrInvalidCredentials so the response does not reveal which.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		s.log.Debug().Str("username", in.Username).Msg("password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		s.log.Info().Int64("user_id", user.ID).Msg("login rejected for inactive user")
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.sessions.Create(ctx, user.ID, in.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	token, err := s.tokens.Issue(user, session.ExpiresAt.Sub(session.CreatedAt))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.audit.RecordAuthEvent(&user.ID, domain.AuditActionLogin, "", in.Origin, user.BranchID)

	return &ports.LoginResult{Session: session, Token: token}, nil
}

// Logout destroys the caller's session. Idempotent: logging out twice is
// not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string, actor *domain.Identity, origin domain.Origin) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if actor != nil {
		s.audit.RecordAuthEvent(&actor.UserID, domain.AuditActionLogout, "", origin, actor.BranchID)
	}
	return nil
}

// LogoutAll revokes every session of the calling user.
func (s *AuthService) LogoutAll(ctx context.Context, actor *domain.Identity, origin domain.Origin) error {
	if actor == nil {
		return domain.ErrCredentialMissing
	}
	if err := s.sessions.DeleteAllForUser(ctx, actor.UserID); err != nil {
		return fmt.Errorf("logout all: %w", err)
	}
	s.audit.RecordAuthEvent(&actor.UserID, domain.AuditActionLogoutAll, "", origin, actor.BranchID)
	return nil
}

// RevokeUserSessions revokes every session of another user, for credential
// rotation or offboarding. Role enforcement happens at the route; the
// recorded entry names the target user as the affected entity.
func (s *AuthService) RevokeUserSessions(ctx context.Context, targetUserID int64, actor *domain.Identity, origin domain.Origin) error {
	if actor == nil {
		return domain.ErrCredentialMissing
	}
	if err := s.sessions.DeleteAllForUser(ctx, targetUserID); err != nil {
		return fmt.Errorf("revoke user sessions: %w", err)
	}
	s.audit.RecordAction(&actor.UserID, domain.AuditActionRevokeSessions, "User", &targetUserID, "", origin, actor.BranchID)
	return nil
}
