package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/cache"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
	"github.com/Hiro-mackay/gc-profile/pkg/jwt"
	"github.com/Hiro-mackay/gc-profile/pkg/logger"
)

const (
	MsgAuthorizationMissing = "Authorization header is missing."
	MsgInvalidToken         = "Invalid token."
)

// JWTAuthMiddleware はJWT認証ミドルウェアを提供します
type JWTAuthMiddleware struct {
	jwtService   *jwt.JWTService
	jwtBlacklist *cache.JWTBlacklist
}

// NewJWTAuthMiddleware は新しいJWTAuthMiddlewareを作成します
// jwtBlacklistがnilの場合は失効チェックを行いません
func NewJWTAuthMiddleware(jwtService *jwt.JWTService, jwtBlacklist *cache.JWTBlacklist) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{
		jwtService:   jwtService,
		jwtBlacklist: jwtBlacklist,
	}
}

// Authenticate は認証ミドルウェアを返します
func (m *JWTAuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperror.NewUnauthorizedError(MsgAuthorizationMissing)
			}

			claims, err := m.jwtService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return apperror.NewTokenExpiredError()
				}
				return apperror.NewUnauthorizedError(MsgInvalidToken)
			}

			ctx := c.Request().Context()

			// ブラックリストチェック
			if m.jwtBlacklist != nil {
				revoked, err := m.jwtBlacklist.IsBlacklisted(ctx, claims.ID)
				if err != nil {
					// Redis障害時は続行
					logger.WithError(ctx, err).Warn("jwt blacklist check failed", "jti", claims.ID)
				} else if revoked {
					return apperror.NewUnauthorizedError(MsgInvalidToken)
				}
			}

			SetUserID(c, claims.UserID)
			c.SetRequest(c.Request().WithContext(logger.ContextWithUserID(ctx, claims.UserID)))

			return next(c)
		}
	}
}

// bearerToken は "Bearer <token>" 形式のヘッダーからトークンを取り出します
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
