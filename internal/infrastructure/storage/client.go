package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config はMinIO接続設定を定義します
type Config struct {
	Endpoint        string // 例: localhost:9000
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	Region          string // default: us-east-1
	PublicURL       string // 公開URLのベース。空ならEndpointから組み立てる
}

// MinIOClient はMinIO操作を提供します
type MinIOClient struct {
	client *minio.Client
	config Config
}

// NewMinIOClient は新しいMinIOClientを作成します。接続はこの時点では行いません。
func NewMinIOClient(cfg Config) (*MinIOClient, error) {
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

func (m *MinIOClient) Client() *minio.Client {
	return m.client
}

func (m *MinIOClient) BucketName() string {
	return m.config.BucketName
}

func (m *MinIOClient) Config() Config {
	return m.config
}

// Health はバケットへの到達性を確認します
func (m *MinIOClient) Health(ctx context.Context) error {
	_, err := m.client.BucketExists(ctx, m.config.BucketName)
	return err
}

// EnsureBucket はバケットが無ければ作成し、アバター配下を匿名読み取り可能にします
func (m *MinIOClient) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.config.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.config.BucketName, minio.MakeBucketOptions{
			Region: m.config.Region,
		}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	policy, err := publicReadPolicy(m.config.BucketName, AvatarPrefix)
	if err != nil {
		return err
	}
	if err := m.client.SetBucketPolicy(ctx, m.config.BucketName, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}
