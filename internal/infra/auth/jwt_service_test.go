package auth

import (
	"testing"
	"time"

	"servicehub/config"
	"servicehub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: ttl}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Env.ServiceName = "servicehub"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	user := &entity.User{ID: 42, Role: entity.RoleAdmin}
	token, expiresAt, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "servicehub", claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.GenerateAccessToken(&entity.User{ID: 1, Role: entity.RoleCustomer})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)
	token, _, err := issuer.GenerateAccessToken(&entity.User{ID: 1, Role: entity.RoleCustomer})
	require.NoError(t, err)

	otherCfg := newTestJWTConfig(time.Hour)
	otherCfg.SecretKey.Access = "another_secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)

	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTService_RejectsOtherTokenTypes(t *testing.T) {
	cfg := newTestJWTConfig(time.Hour)
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  1,
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)

	assert.ErrorIs(t, err, errUnexpectedTokenType)
}

func TestJWTService_RejectsMalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}
