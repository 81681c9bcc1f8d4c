package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

const bearerScheme = "bearer"

// TokenVerifier validates and mints HS256 bearer tokens. The secret is
// process-wide read-only configuration fixed at construction time.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for the given shared secret. An empty
// secret is tolerated here so the server can boot for health probes; Verify
// reports it as a misconfiguration instead.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify resolves a raw Authorization header value into an Identity.
//
// Extraction runs before any cryptographic work: the value must be exactly
// two space-separated tokens whose first token case-insensitively equals
// "Bearer". Any deviation is domain.ErrCredentialMalformed. A missing secret
// is domain.ErrServerMisconfigured: a server fault, not a caller fault.
func (v *TokenVerifier) Verify(rawHeader string) (*domain.Identity, error) {
	parts := strings.Fields(rawHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return nil, domain.ErrCredentialMalformed
	}

	if len(v.secret) == 0 {
		return nil, domain.ErrServerMisconfigured
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrCredentialExpired
		}
		return nil, domain.ErrCredentialInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrCredentialInvalid
	}

	return identityFromClaims(claims)
}

// Issue mints a signed token for the user, valid for ttl.
func (v *TokenVerifier) Issue(user *domain.User, ttl time.Duration) (string, error) {
	if len(v.secret) == 0 {
		return "", domain.ErrServerMisconfigured
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       strconv.FormatInt(user.ID, 10),
		"username":  user.Username,
		"role":      string(user.Role),
		"branch_id": user.BranchID,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(v.secret)
}

// identityFromClaims narrows the decoded claim bag into a fully-typed
// Identity. Partially-valid claims never leak through: every field either
// validates or the whole credential is rejected. The one sanctioned default
// is branch_id, which falls back to branch 0 (head office) when absent.
func identityFromClaims(claims jwt.MapClaims) (*domain.Identity, error) {
	userID, ok := subjectID(claims["sub"])
	if !ok {
		return nil, domain.ErrCredentialInvalid
	}

	roleRaw, _ := claims["role"].(string)
	role, ok := domain.ParseRole(roleRaw)
	if !ok {
		return nil, domain.ErrCredentialInvalid
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return nil, domain.ErrCredentialInvalid
	}

	branchID := int64(0)
	if raw, present := claims["branch_id"]; present {
		branchID, ok = subjectID(raw)
		if !ok {
			return nil, domain.ErrCredentialInvalid
		}
	}

	return &domain.Identity{
		UserID:   userID,
		Username: username,
		Role:     role,
		BranchID: branchID,
	}, nil
}

// subjectID accepts a claim encoded either as a JSON number or as the string
// form of one, and converts it to int64. Non-finite and fractional values
// are rejected.
func subjectID(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		n := int64(v)
		if float64(n) != v {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	case int64:
		return v, true
	}
	return 0, false
}
