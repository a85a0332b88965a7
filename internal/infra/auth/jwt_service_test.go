package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessSecret:   "test_access_secret_key_very_long_for_testing",
			AccessTokenTTL: time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, entity.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenSignedWithOtherSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	assert.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.Auth.AccessSecret = "another_secret_entirely_for_testing_purposes"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := otherService.GenerateToken(uuid.New(), entity.RoleCustomer)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessSecret: ""}}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	assert.NoError(t, err)

	assert.Equal(t, time.Hour, jwtService.AccessTokenDuration())
}

func TestJWTService_UnknownRoleFallsBackToCustomer(t *testing.T) {
	jwtService, err := NewJWTService(testAuthConfig())
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.Role("something-else"))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}
