package cache

import "fmt"

// KeyPrefix はRedisキーのプレフィックスを定義します
type KeyPrefix string

const (
	PrefixJWTBlacklist KeyPrefix = "jwt:blacklist" // jwt:blacklist:{jti}
	PrefixRateLimit    KeyPrefix = "ratelimit"     // ratelimit:{type}:{identifier}
)

// JWTBlacklistKey はJWTブラックリストキーを生成します
func JWTBlacklistKey(jti string) string {
	return fmt.Sprintf("%s:%s", PrefixJWTBlacklist, jti)
}

// RateLimitKey はレート制限キーを生成します
func RateLimitKey(limitType, identifier string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixRateLimit, limitType, identifier)
}
