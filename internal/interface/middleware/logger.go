package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

// Logger はリクエストロギングミドルウェアを返します
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// エラーはハンドラー側で書き込まれていないため、ここで確定したステータスを使う
			status := c.Response().Status
			if err != nil {
				status = statusOf(err)
			}

			logger.Info(c.Request().Context(), "request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", status,
				"latency_ms", time.Since(start).Milliseconds(),
				"ip", c.RealIP(),
				"user_agent", c.Request().UserAgent(),
				"bytes_in", c.Request().ContentLength,
				"bytes_out", c.Response().Size,
			)

			return err
		}
	}
}
