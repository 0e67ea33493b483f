package auth

import (
	"testing"

	"mandi/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func hasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	if cost > 0 {
		cfg.Auth = &config.AuthConfig{BcryptCost: cost}
	}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig(bcrypt.MinCost))

	password := "mandi-pass-123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig(bcrypt.MinCost))

	first, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	second, err := hasher.Hash("same-password")
	assert.NoError(t, err)

	// Same password, different salt, different hash.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(hasherConfig(99))

	hash, err := hasher.Hash("mandi-pass-123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
