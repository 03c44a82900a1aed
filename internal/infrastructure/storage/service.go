package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// StorageService はバケット内のオブジェクト操作を提供します
type StorageService struct {
	client     *minio.Client
	bucketName string
	baseURL    string
}

// NewStorageService は新しいStorageServiceを作成します
func NewStorageService(client *MinIOClient) *StorageService {
	cfg := client.Config()

	baseURL := cfg.PublicURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = scheme + "://" + cfg.Endpoint
	}

	return &StorageService{
		client:     client.Client(),
		bucketName: client.BucketName(),
		baseURL:    baseURL,
	}
}

// PutObject はバイト列をオブジェクトとして保存します。既存のキーは上書きされます。
func (s *StorageService) PutObject(ctx context.Context, objectKey string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "no-cache",
	})
	if err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

// DeleteObject はオブジェクトを削除します。存在しないキーはエラーになりません。
func (s *StorageService) DeleteObject(ctx context.Context, objectKey string) error {
	if err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ObjectInfo はオブジェクトのキーと更新日時です
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// ListObjects は接頭辞に一致するオブジェクトを列挙します
func (s *StorageService) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	for obj := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		objects = append(objects, ObjectInfo{Key: obj.Key, LastModified: obj.LastModified})
	}
	return objects, nil
}

// ObjectURL はオブジェクトの公開URLを返します
// 形式: {base_url}/{bucket}/{key}
func (s *StorageService) ObjectURL(objectKey string) (string, error) {
	u, err := url.JoinPath(s.baseURL, s.bucketName, objectKey)
	if err != nil {
		return "", fmt.Errorf("failed to build object url: %w", err)
	}
	return u, nil
}
