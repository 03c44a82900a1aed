package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// JWTBlacklist は失効させたトークンのjtiを管理します
type JWTBlacklist struct {
	client *redis.Client
}

// NewJWTBlacklist は新しいJWTBlacklistを作成します
func NewJWTBlacklist(client *redis.Client) *JWTBlacklist {
	return &JWTBlacklist{client: client}
}

// Add はjtiをトークンの有効期限までブラックリストに登録します
func (b *JWTBlacklist) Add(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := b.client.Set(ctx, JWTBlacklistKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted はjtiがブラックリストに存在するか確認します
func (b *JWTBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, JWTBlacklistKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return n > 0, nil
}
