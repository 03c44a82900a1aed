package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	ContextKeyUserID = "user_id"
)

// GetUserID はコンテキストから認証済みユーザーIDを取得します
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextKeyUserID).(int64)
	return id, ok && id > 0
}

// SetUserID はコンテキストに認証済みユーザーIDを設定します
func SetUserID(c echo.Context, userID int64) {
	c.Set(ContextKeyUserID, userID)
}
