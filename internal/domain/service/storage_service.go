package service

import (
	"context"
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

// StoredAvatar は保存済みアバターの情報です
type StoredAvatar struct {
	Key          valueobject.AvatarKey
	LastModified time.Time
}

// AvatarStorage はアバター画像の保存先を表すドメインサービスインターフェースです
type AvatarStorage interface {
	// Upload はJPEG画像をキーに保存します。同じキーは上書きされます。
	Upload(ctx context.Context, key valueobject.AvatarKey, data []byte) error

	// URL はキーに対応する公開URLを返します
	URL(ctx context.Context, key valueobject.AvatarKey) (string, error)

	// Delete はキーのオブジェクトを削除します
	Delete(ctx context.Context, key valueobject.AvatarKey) error

	// List は保存済みのアバターを列挙します。形式に合わないキーは含みません。
	List(ctx context.Context) ([]StoredAvatar, error)
}
