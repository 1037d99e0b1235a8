package auth

import (
	"testing"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Env.ServiceName = "eventhub-test"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	caps := []string{"planner", "vendor"}
	accessToken, refreshToken, err := svc.GenerateTokens(42, caps)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), accessClaims.UserID)
	assert.Equal(t, caps, accessClaims.Capabilities)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "42", accessClaims.Subject)
	assert.Equal(t, "eventhub-test", accessClaims.Issuer)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Capabilities)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	assert.Equal(t, time.Hour, svc.RefreshTokenDuration())
}

func TestJWTService_RejectsSwappedTokenTypes(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(1, nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)

	issued := time.Now().Add(-2 * time.Hour)
	impl.now = func() time.Time { return issued }
	accessToken, _, err := svc.GenerateTokens(7, nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_WrongTokenTypeError(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)

	// A refresh-typed token signed with the access secret passes the signature
	// check and must fail on type.
	token, err := impl.sign(3, nil, service.TokenTypeRefresh, time.Minute, impl.accessSecret)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.True(t, errors.Is(err, ErrInvalidTokenType))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.SecretKey.Refresh = cfg.SecretKey.Access

	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
