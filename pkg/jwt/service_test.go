package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-with-at-least-32-chars"

func newTestService() *JWTService {
	cfg := DefaultConfig()
	cfg.SecretKey = testSecret
	return NewJWTService(cfg)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken(7)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "7", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RejectsOtherAudience(t *testing.T) {
	otherCfg := DefaultConfig()
	otherCfg.SecretKey = testSecret
	otherCfg.Audience = []string{"another-api"}

	token, err := NewJWTService(otherCfg).GenerateAccessToken(7)
	require.NoError(t, err)

	_, err = newTestService().ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken(7)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_InvalidSignature(t *testing.T) {
	other := NewJWTService(Config{SecretKey: "another-secret-key-with-32-characters!", Issuer: "gc-profile", AccessTokenExpiry: time.Minute})
	token, err := other.GenerateAccessToken(7)
	require.NoError(t, err)

	_, err = newTestService().ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	claims := AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "gc-profile",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		UserID: 7,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService().ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := newTestService().ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrSecretKeyRequired)
	assert.ErrorIs(t, Config{SecretKey: "short"}.Validate(), ErrSecretKeyTooShort)
	assert.NoError(t, Config{SecretKey: testSecret}.Validate())
}
