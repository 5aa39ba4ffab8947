package usecase

import (
	"context"

	"outreach/internal/domain/entity"
)

// LoginInput carries the credentials presented at login. Role must match the
// stored account: the same identifier cannot log in under a different role.
type LoginInput struct {
	UserID string      `json:"user_id"`
	Role   entity.Role `json:"role"`
	Secret string      `json:"secret"`
}

// LoginResult is the session handed back after a successful login.
type LoginResult struct {
	User         entity.UserAccount `json:"user"`
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
}

// SessionUsecase defines the interface for login sessions. Authentication is
// local-authoritative: credentials are checked against the local users
// collection, never against the remote replica.
type SessionUsecase interface {
	// Login verifies the credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)
}
