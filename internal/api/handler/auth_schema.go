package handler

import (
	"time"

	"github.com/workshoppro/joborder-system/internal/core/domain"
)

type loginRequest struct {
	Username   string `json:"username"    validate:"required"`
	Password   string `json:"password"    validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

type sessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type loginResponse struct {
	Token   string                `json:"token"`
	Session sessionResponse       `json:"session"`
	User    domain.UserProjection `json:"user"`
}

type identityResponse struct {
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	BranchID int64       `json:"branch_id"`
}
