package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
	"github.com/Hiro-mackay/gc-profile/pkg/jwt"
)

func newTestJWTService(expiry time.Duration) *jwt.JWTService {
	cfg := jwt.DefaultConfig()
	cfg.SecretKey = "middleware-test-secret-key-32-chars-long"
	cfg.AccessTokenExpiry = expiry
	return jwt.NewJWTService(cfg)
}

func runAuthenticate(t *testing.T, svc *jwt.JWTService, header string) (echo.Context, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	err := NewJWTAuthMiddleware(svc, nil).Authenticate()(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	return c, called, err
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestAuthenticate_SetsUserID(t *testing.T) {
	svc := newTestJWTService(time.Minute)
	token, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)

	c, called, err := runAuthenticate(t, svc, "Bearer "+token)

	require.NoError(t, err)
	assert.True(t, called)
	userID, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, called, err := runAuthenticate(t, newTestJWTService(time.Minute), "")

	assert.False(t, called)
	code, _ := apperror.CodeOf(err)
	assert.Equal(t, apperror.CodeUnauthorized, code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	token, err := newTestJWTService(-time.Minute).GenerateAccessToken(42)
	require.NoError(t, err)

	_, called, err := runAuthenticate(t, newTestJWTService(time.Minute), "Bearer "+token)

	assert.False(t, called)
	code, _ := apperror.CodeOf(err)
	assert.Equal(t, apperror.CodeTokenExpired, code)
}
