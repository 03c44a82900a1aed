package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "jwt:blacklist:abc", JWTBlacklistKey("abc"))
	assert.Equal(t, "ratelimit:profile:create:user:7", RateLimitKey(RateLimitProfileCreate.Type, "user:7"))
}
