package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"outreach/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("demo123")
	require.NoError(t, err)
	assert.NotEqual(t, "demo123", hash)

	assert.True(t, hasher.Check("demo123", hash))
	assert.False(t, hasher.Check("wrong-secret", hash))
	assert.False(t, hasher.Check("demo123", "not-a-hash"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("demo123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
