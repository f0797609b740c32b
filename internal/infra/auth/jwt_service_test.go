package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Admin = &config.AdminConfig{
		AccessSecret:   secret,
		AccessTokenTTL: ttl,
	}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(jwtConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(jwtConfig("test-secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, OperatorSubject, claims.Subject)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(jwtConfig("issuer-secret", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(jwtConfig("other-secret", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken()
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(jwtConfig("test-secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.GenerateToken()
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService(jwtConfig("test-secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(jwtConfig("test-secret", 12*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, svc.AccessTokenDuration())
}
