package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimitResult はレート制限チェックの結果を表します
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time // 拒否された場合は再試行可能になる時刻
}

// RateLimitConfig はレート制限の設定を定義します
type RateLimitConfig struct {
	Type     string
	Requests int
	Window   time.Duration
}

var (
	RateLimitProfileCreate = RateLimitConfig{
		Type:     "profile:create",
		Requests: 10,
		Window:   time.Minute,
	}
	RateLimitAPIDefault = RateLimitConfig{
		Type:     "api:default",
		Requests: 600,
		Window:   time.Minute,
	}
)

// RateLimiter はRedisのソート済みセットによるスライディングウィンドウ制限を提供します
type RateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// NewRateLimiter は新しいRateLimiterを作成します
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client, now: time.Now}
}

// ARGV: now(ms), window(ms), limit, member
// 同じミリ秒のリクエストも別々に数えるため、メンバーは呼び出し側で一意に採番する
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)

local count = redis.call('ZCARD', key)
if count < limit then
    redis.call('ZADD', key, now, member)
    redis.call('PEXPIRE', key, window)
    return {1, limit - count - 1, now + window}
end

local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
return {0, 0, tonumber(oldest[2]) + window}
`)

// Allow はidentifierのリクエストがウィンドウ内の上限に収まるかを判定し、収まる場合は記録します
func (r *RateLimiter) Allow(ctx context.Context, identifier string, cfg RateLimitConfig) (*RateLimitResult, error) {
	now := r.now().UnixMilli()

	res, err := slidingWindowScript.Run(ctx, r.client,
		[]string{RateLimitKey(cfg.Type, identifier)},
		now, cfg.Window.Milliseconds(), cfg.Requests, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to check rate limit: %w", err)
	}
	if len(res) != 3 {
		return nil, fmt.Errorf("unexpected rate limit script result: %v", res)
	}

	return &RateLimitResult{
		Allowed:   res[0] == 1,
		Remaining: int(res[1]),
		ResetAt:   time.UnixMilli(res[2]),
	}, nil
}
