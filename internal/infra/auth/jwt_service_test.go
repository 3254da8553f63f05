package auth

import (
	"testing"
	"time"

	"spaetimap/config"
	"spaetimap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{
		JWTSecret: "test_secret_key_very_long_for_testing",
		TokenTTL:  ttl,
	}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	admin := &entity.Admin{
		ID:    uuid.NewString(),
		Email: "admin@example.com",
	}

	token, err := jwtService.Generate(admin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, admin.Email, claims.Email)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	issuer, err := NewJWTService(testAuthConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := testAuthConfig(time.Hour)
	otherCfg.Auth.JWTSecret = "a_completely_different_secret_key"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Generate(&entity.Admin{ID: uuid.NewString(), Email: "admin@example.com"})
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig(-time.Minute))
	require.NoError(t, err)

	token, err := jwtService.Generate(&entity.Admin{ID: uuid.NewString(), Email: "admin@example.com"})
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
