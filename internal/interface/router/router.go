package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/cache"
	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/di"
	"github.com/Hiro-mackay/gc-profile/internal/interface/middleware"
)

// Router はルート定義を管理します
type Router struct {
	echo        *echo.Echo
	handlers    *di.Handlers
	middlewares *di.Middlewares
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares) *Router {
	return &Router{
		echo:        e,
		handlers:    handlers,
		middlewares: middlewares,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.echo.GET("/metrics", middleware.MetricsHandler())

	// 同じルートをルート直下と /api/v1 の両方に公開する
	r.setupProfileRoutes(r.echo.Group(""))
	r.setupProfileRoutes(r.echo.Group("/api/v1"))
}

// setupHealthRoutes はヘルスチェックルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health == nil {
		return
	}
	r.echo.GET("/health", r.handlers.Health.Check)
	r.echo.GET("/ready", r.handlers.Health.Ready)
}

// setupProfileRoutes はプロファイル関連ルートを設定します
func (r *Router) setupProfileRoutes(g *echo.Group) {
	users := g.Group("/users/:user_id", r.middlewares.JWTAuth.Authenticate())

	for _, path := range []string{"/profile/", "/profile"} {
		users.POST(path, r.handlers.Profile.CreateProfile,
			r.middlewares.RateLimit.ByUser(cache.RateLimitProfileCreate))
		users.GET(path, r.handlers.Profile.GetProfile,
			r.middlewares.RateLimit.ByUser(cache.RateLimitAPIDefault))
	}
}
