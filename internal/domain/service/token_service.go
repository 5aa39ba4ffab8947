package service

import (
	"time"

	"outreach/internal/domain/entity"
)

// TokenClaims is the identity carried by a validated access token.
type TokenClaims struct {
	UserID string      // The account identifier the token was issued for.
	Role   entity.Role // The account role at issue time.
}

// TokenService issues and validates the session tokens handed to the UI layer
// after a successful local login.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for an account.
	GenerateTokens(userID string, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken parses and verifies an access token, returning its
	// claims.
	ValidateAccessToken(token string) (*TokenClaims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
