package storage

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

const avatarContentType = "image/jpeg"

var avatarUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "avatar_uploads_total",
		Help: "Total number of avatar uploads to object storage",
	},
	[]string{"result"},
)

// AvatarStorageAdapter はStorageServiceをドメイン層のAvatarStorageに適合させるアダプターです
type AvatarStorageAdapter struct {
	svc *StorageService
}

// NewAvatarStorageAdapter は新しいAvatarStorageAdapterを作成します
func NewAvatarStorageAdapter(svc *StorageService) *AvatarStorageAdapter {
	return &AvatarStorageAdapter{svc: svc}
}

// Upload はJPEG画像を保存します
func (a *AvatarStorageAdapter) Upload(ctx context.Context, key valueobject.AvatarKey, data []byte) error {
	if err := a.svc.PutObject(ctx, key.Value(), data, avatarContentType); err != nil {
		avatarUploadsTotal.WithLabelValues("error").Inc()
		return err
	}
	avatarUploadsTotal.WithLabelValues("success").Inc()
	return nil
}

// URL は公開URLを返します
func (a *AvatarStorageAdapter) URL(_ context.Context, key valueobject.AvatarKey) (string, error) {
	return a.svc.ObjectURL(key.Value())
}

// Delete はアバター画像を削除します
func (a *AvatarStorageAdapter) Delete(ctx context.Context, key valueobject.AvatarKey) error {
	return a.svc.DeleteObject(ctx, key.Value())
}

// List はバケット内のアバターを列挙します
func (a *AvatarStorageAdapter) List(ctx context.Context) ([]service.StoredAvatar, error) {
	objects, err := a.svc.ListObjects(ctx, AvatarPrefix)
	if err != nil {
		return nil, err
	}

	avatars := make([]service.StoredAvatar, 0, len(objects))
	for _, obj := range objects {
		key, err := valueobject.ParseAvatarKey(obj.Key)
		if err != nil {
			continue
		}
		avatars = append(avatars, service.StoredAvatar{Key: key, LastModified: obj.LastModified})
	}
	return avatars, nil
}

var _ service.AvatarStorage = (*AvatarStorageAdapter)(nil)
