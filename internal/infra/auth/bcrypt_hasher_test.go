package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	password := "super-secret"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong-password", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)
	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// bcrypt generates a fresh salt per hash
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_WithConfiguredCost(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 6}, // Lower cost for faster testing
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("super-secret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 99},
	}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("super-secret")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
