package impl

import (
	"context"
	"errors"
	"fmt"

	"outreach/internal/domain/repository"
	"outreach/internal/domain/service"
	"outreach/internal/usecase"
)

// ErrInvalidCredentials is returned on any login failure. The cause (unknown
// account, role mismatch, wrong secret) is deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

type sessionService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
}

// NewSessionService creates a new session service instance
func NewSessionService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
) usecase.SessionUsecase {
	return &sessionService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Login verifies credentials against the local users collection and issues a
// token pair. The stored credential hash is scrubbed from the returned user.
func (s *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginResult, error) {
	account, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if account.Role != input.Role {
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Check(input.Secret, account.Secret) {
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokens.GenerateTokens(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	user := account.Clone()
	user.Secret = ""

	return &usecase.LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
