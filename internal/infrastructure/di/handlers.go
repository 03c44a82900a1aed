package di

import (
	"github.com/Hiro-mackay/gc-profile/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health  *handler.HealthHandler
	Profile *handler.ProfileHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	profileHandler := handler.NewProfileHandler(
		c.Profile.GetProfile,
		c.Profile.CreateProfile,
	)

	return &Handlers{
		Health:  handler.NewHealthHandler(c.HealthCheckers()),
		Profile: profileHandler,
	}
}

// HealthCheckers は接続を保持している依存サービスのチェッカーを返します
// Optionsで外部から渡した依存は含みません
func (c *Container) HealthCheckers() map[string]handler.HealthChecker {
	checkers := make(map[string]handler.HealthChecker)
	if c.PgClient != nil {
		checkers["postgres"] = c.PgClient
	}
	if c.RedisClient != nil {
		checkers["redis"] = c.RedisClient
	}
	if c.MinIOClient != nil {
		checkers["minio"] = c.MinIOClient
	}
	return checkers
}
