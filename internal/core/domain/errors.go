package domain

import "errors"

// Credential resolution failures. All of them surface to the caller as a
// plain 401; the specific cause is logged, never returned.
var (
	ErrCredentialMissing   = errors.New("credential missing")
	ErrCredentialMalformed = errors.New("credential malformed")
	ErrCredentialExpired   = errors.New("credential expired")
	ErrCredentialInvalid   = errors.New("credential invalid")
)

// ErrServerMisconfigured means the verification secret is absent. Not
// attributable to the caller: maps to 500, never to 401.
var ErrServerMisconfigured = errors.New("server misconfigured")

// ErrForbiddenRole is returned by the authorization gate when a resolved
// identity lacks a required role.
var ErrForbiddenRole = errors.New("role not allowed")

// Session and storage failures. A storage failure during validation is
// deliberately indistinguishable from an absent session (fail-closed).
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrAuditWriteFailed marks a failed audit persistence attempt. It is
// absorbed inside the audit pipeline and never reaches a business caller.
var ErrAuditWriteFailed = errors.New("audit write failed")

// Login failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
