package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Hiro-mackay/gc-profile/internal/domain/repository"
	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/cache"
	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/imaging"
	infraRepo "github.com/Hiro-mackay/gc-profile/internal/infrastructure/repository"
	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/storage"
	"github.com/Hiro-mackay/gc-profile/pkg/config"
	"github.com/Hiro-mackay/gc-profile/pkg/jwt"
)

// アバター画像の正規化設定
const (
	avatarMaxDimension = 512
	avatarJPEGQuality  = 85
)

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	PgClient    *database.PostgresClient
	RedisClient *cache.RedisClient
	MinIOClient *storage.MinIOClient
	TxManager   *database.TxManager

	// Services
	JWTService      *jwt.JWTService
	JWTBlacklist    *cache.JWTBlacklist
	RateLimiter     *cache.RateLimiter
	AvatarStorage   service.AvatarStorage
	AvatarProcessor service.AvatarProcessor
	AuthzService    service.AuthorizationService

	// Repositories
	UserRepo        repository.UserRepository
	UserProfileRepo repository.UserProfileRepository

	// Profile UseCases
	Profile *ProfileUseCases

	// config
	config *config.Config
}

// Options はContainer作成時のオプションを定義します
// 指定された依存はそのまま使い、接続処理を行いません(テスト用)
type Options struct {
	PostgresPool  *pgxpool.Pool
	RedisClient   *redis.Client
	AvatarStorage service.AvatarStorage
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	jwtConfig := jwt.Config{
		SecretKey:         cfg.JWT.SecretKey,
		Issuer:            cfg.JWT.Issuer,
		Audience:          cfg.JWT.Audience,
		AccessTokenExpiry: cfg.JWT.AccessTokenExpiry,
	}
	if err := jwtConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid jwt config: %w", err)
	}

	c := &Container{
		config: cfg,
	}

	// PostgreSQL
	if opts.PostgresPool != nil {
		c.TxManager = database.NewTxManager(opts.PostgresPool)
	} else {
		slog.Info("connecting to PostgreSQL...")
		pgClient, err := database.NewPostgresClient(ctx, cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.PgClient = pgClient
		c.TxManager = database.NewTxManager(pgClient.Pool())
		slog.Info("connected to PostgreSQL")
	}

	// Redis
	redisClient := opts.RedisClient
	if redisClient == nil {
		slog.Info("connecting to Redis...")
		redisConfig := cache.DefaultConfig()
		redisConfig.URL = cfg.Redis.URL
		rc, err := cache.NewRedisClient(ctx, redisConfig)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = rc
		redisClient = rc.Client()
		slog.Info("connected to Redis")
	}
	c.JWTBlacklist = cache.NewJWTBlacklist(redisClient)
	c.RateLimiter = cache.NewRateLimiter(redisClient)

	// MinIO
	if opts.AvatarStorage != nil {
		c.AvatarStorage = opts.AvatarStorage
	} else {
		minioClient, err := storage.NewMinIOClient(storage.Config{
			Endpoint:        cfg.Storage.Endpoint,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			BucketName:      cfg.Storage.BucketName,
			UseSSL:          cfg.Storage.UseSSL,
			Region:          cfg.Storage.Region,
			PublicURL:       cfg.Storage.PublicURL,
		})
		if err != nil {
			c.Close()
			return nil, err
		}
		if err := minioClient.EnsureBucket(ctx); err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to prepare bucket: %w", err)
		}
		c.MinIOClient = minioClient
		c.AvatarStorage = storage.NewAvatarStorageAdapter(storage.NewStorageService(minioClient))
		slog.Info("object storage ready", "bucket", cfg.Storage.BucketName)
	}
	c.AvatarProcessor = imaging.NewAvatarProcessor(avatarMaxDimension, avatarJPEGQuality)

	// JWT Service
	c.JWTService = jwt.NewJWTService(jwtConfig)

	// Repositories
	c.UserRepo = infraRepo.NewUserRepository(c.TxManager)
	c.UserProfileRepo = infraRepo.NewUserProfileRepository(c.TxManager)

	c.AuthzService = service.NewAuthorizationService()

	return c, nil
}

// InitProfileUseCases はProfile UseCasesを初期化します
func (c *Container) InitProfileUseCases() {
	c.Profile = NewProfileUseCases(c)
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	var errs []error

	if c.PgClient != nil {
		c.PgClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	return errors.Join(errs...)
}
