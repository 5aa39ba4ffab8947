// Package auth provides authentication infrastructure.
package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"outreach/config"
	"outreach/internal/domain/service"
)

// bcryptHasher implements PasswordHasher using bcrypt
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-based password hasher.
// A cost of 0 (or below the bcrypt minimum) falls back to the default cost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a bcrypt hash of the given secret
func (h *bcryptHasher) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(bytes), nil
}

// Check compares a plaintext secret against a stored bcrypt hash
func (h *bcryptHasher) Check(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
