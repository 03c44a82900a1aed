package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/cache"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

var rateLimitExceeded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of requests rejected by the rate limiter",
	},
	[]string{"limit"},
)

// RateLimitMiddleware はレート制限ミドルウェアを提供します
type RateLimitMiddleware struct {
	limiter *cache.RateLimiter
}

// NewRateLimitMiddleware は新しいRateLimitMiddlewareを作成します
func NewRateLimitMiddleware(limiter *cache.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// ByUser はユーザーIDでレート制限するミドルウェアを返します
// 認証ミドルウェアの後に置く必要があります
func (m *RateLimitMiddleware) ByUser(cfg cache.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := GetUserID(c); ok {
				identifier = strconv.FormatInt(userID, 10)
			}

			ctx := c.Request().Context()
			result, err := m.limiter.Allow(ctx, identifier, cfg)
			if err != nil {
				// レート制限チェックに失敗した場合はリクエストを許可
				logger.WithError(ctx, err).Warn("rate limit check failed", "limit", cfg.Type)
				return next(c)
			}

			setRateLimitHeaders(c, cfg, result)

			if !result.Allowed {
				rateLimitExceeded.WithLabelValues(cfg.Type).Inc()
				return apperror.NewTooManyRequestsError("rate limit exceeded")
			}

			return next(c)
		}
	}
}

// setRateLimitHeaders はレート制限ヘッダーを設定します
func setRateLimitHeaders(c echo.Context, cfg cache.RateLimitConfig, result *cache.RateLimitResult) {
	h := c.Response().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	h.Set("X-RateLimit-Reset", result.ResetAt.UTC().Format(time.RFC3339))
	if !result.Allowed {
		retryAfter := int(time.Until(result.ResetAt).Seconds()) + 1
		h.Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
	}
}
