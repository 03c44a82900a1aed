package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

// MemoryAvatarStorage はテスト用のメモリ上のAvatarStorage実装です
type MemoryAvatarStorage struct {
	mu      sync.Mutex
	objects map[string]storedObject

	// エラーを返すように設定できる
	UploadError error
	DeleteError error
}

type storedObject struct {
	key          valueobject.AvatarKey
	data         []byte
	lastModified time.Time
}

// NewMemoryAvatarStorage は新しいMemoryAvatarStorageを作成します
func NewMemoryAvatarStorage() *MemoryAvatarStorage {
	return &MemoryAvatarStorage{objects: make(map[string]storedObject)}
}

func (m *MemoryAvatarStorage) Upload(ctx context.Context, key valueobject.AvatarKey, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UploadError != nil {
		return m.UploadError
	}
	m.objects[key.Value()] = storedObject{key: key, data: data, lastModified: time.Now()}
	return nil
}

func (m *MemoryAvatarStorage) URL(ctx context.Context, key valueobject.AvatarKey) (string, error) {
	return fmt.Sprintf("http://mock-storage/gc-profile/%s", key.Value()), nil
}

func (m *MemoryAvatarStorage) Delete(ctx context.Context, key valueobject.AvatarKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.objects, key.Value())
	return nil
}

func (m *MemoryAvatarStorage) List(ctx context.Context) ([]service.StoredAvatar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	avatars := make([]service.StoredAvatar, 0, len(m.objects))
	for _, obj := range m.objects {
		avatars = append(avatars, service.StoredAvatar{Key: obj.key, LastModified: obj.lastModified})
	}
	return avatars, nil
}

// Has はキーのオブジェクトが保存されているかを返します
func (m *MemoryAvatarStorage) Has(key valueobject.AvatarKey) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.objects[key.Value()]
	return ok
}

// Reset は保存内容と設定したエラーをクリアします
func (m *MemoryAvatarStorage) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects = make(map[string]storedObject)
	m.UploadError = nil
	m.DeleteError = nil
}

// Backdate は保存済みオブジェクトの更新日時を過去にずらします
func (m *MemoryAvatarStorage) Backdate(key valueobject.AvatarKey, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if obj, ok := m.objects[key.Value()]; ok {
		obj.lastModified = obj.lastModified.Add(-d)
		m.objects[key.Value()] = obj
	}
}
