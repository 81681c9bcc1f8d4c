package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

func runRequireRole(t *testing.T, identity *domain.Identity, required ...domain.Role) (bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if identity != nil {
		c.Set(identityContextKey, identity)
	}

	called := false
	handler := RequireRole(required...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return called, err
}

func TestRequireRole_AllowsMember(t *testing.T) {
	identity := &domain.Identity{UserID: 1, Username: "boss", Role: domain.RoleOwner}

	called, err := runRequireRole(t, identity, domain.RoleOwner, domain.RoleManager)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not reached")
	}
}

func TestRequireRole_RejectsNonMember(t *testing.T) {
	identity := &domain.Identity{UserID: 2, Username: "worker", Role: domain.RoleWorker}

	called, err := runRequireRole(t, identity, domain.RoleOwner, domain.RoleManager)
	if !errors.Is(err, domain.ErrForbiddenRole) {
		t.Fatalf("expected ErrForbiddenRole, got %v", err)
	}
	if called {
		t.Fatalf("next handler ran despite forbidden role")
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	called, err := runRequireRole(t, nil, domain.RoleOwner)
	if !errors.Is(err, domain.ErrCredentialMissing) {
		t.Fatalf("expected ErrCredentialMissing, got %v", err)
	}
	if called {
		t.Fatalf("next handler ran without an identity")
	}
}
