package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/di"
	"github.com/Hiro-mackay/gc-profile/internal/interface/router"
	"github.com/Hiro-mackay/gc-profile/internal/interface/server"
	"github.com/Hiro-mackay/gc-profile/pkg/config"
	"github.com/Hiro-mackay/gc-profile/pkg/jwt"
)

// TestServer holds all test server dependencies
type TestServer struct {
	Echo       *echo.Echo
	Pool       *pgxpool.Pool
	Redis      *redis.Client
	Container  *di.Container
	JWTService *jwt.JWTService
	Storage    *MemoryAvatarStorage
}

// NewTestServer は実DB・実Redisとメモリ上のアバターストレージで構成したサーバーを作成します
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testConfig := DefaultTestConfig()
	pool, redisClient := SetupTestEnvironment(t)

	cfg := config.Default()
	cfg.Database.URL = testConfig.DatabaseURL
	cfg.Redis.URL = testConfig.RedisURL
	cfg.JWT.SecretKey = testConfig.JWTSecretKey
	cfg.JWT.Issuer = "gc-profile-test"
	cfg.JWT.Audience = []string{"gc-profile-api-test"}
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute

	storage := NewMemoryAvatarStorage()

	container, err := di.NewContainerWithOptions(context.Background(), cfg, di.Options{
		PostgresPool:  pool,
		RedisClient:   redisClient,
		AvatarStorage: storage,
	})
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	container.InitProfileUseCases()

	srv := server.NewServer(server.DefaultConfig())
	router.NewRouter(srv.Echo(), di.NewHandlers(container), di.NewMiddlewares(container)).Setup()

	return &TestServer{
		Echo:       srv.Echo(),
		Pool:       pool,
		Redis:      redisClient,
		Container:  container,
		JWTService: container.JWTService,
		Storage:    storage,
	}
}

// Cleanup cleans up test data
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()
	TruncateTables(t, ts.Pool, "user_profiles", "users")
	FlushRedis(t, ts.Redis)
	ts.Storage.Reset()
}

// AccessToken はユーザーのアクセストークンを発行します
func (ts *TestServer) AccessToken(t *testing.T, userID int64) string {
	t.Helper()

	token, err := ts.JWTService.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("Failed to generate access token: %v", err)
	}
	return token
}
