package auth

import (
	"testing"

	"spaetimap/config"
	"spaetimap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hasherWithCost(cost int) service.PasswordHasher {
	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{BcryptCost: cost}

	return NewBcryptHasher(cfg)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := hasherWithCost(bcrypt.MinCost)

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CustomCost(t *testing.T) {
	customCost := 6
	hasher := hasherWithCost(customCost)

	hash, err := hasher.Hash("some password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CostClampedToDefault(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default.
	hasher := hasherWithCost(0)

	hash, err := hasher.Hash("some password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
