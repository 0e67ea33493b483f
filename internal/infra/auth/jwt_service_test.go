package auth

import (
	"testing"
	"time"

	"mandi/config"
	"mandi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	accountID := uuid.New()

	token, err := jwtService.GenerateToken(accountID, entity.RoleSeller)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, entity.RoleSeller, claims.Role)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	verifier, err := NewJWTService(testConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(uuid.New(), entity.RoleBuyer)
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{TokenTTL: -time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.RoleBuyer)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
}
