package jwt

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims はアクセストークンのクレームを定義します
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// subject はユーザーIDをsubクレーム用の文字列に変換します
func subject(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
