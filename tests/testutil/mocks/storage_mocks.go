package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

// MockAvatarStorage is a mock of service.AvatarStorage
type MockAvatarStorage struct {
	mock.Mock
}

func NewMockAvatarStorage(t *testing.T) *MockAvatarStorage {
	m := &MockAvatarStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAvatarStorage) Upload(ctx context.Context, key valueobject.AvatarKey, data []byte) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *MockAvatarStorage) URL(ctx context.Context, key valueobject.AvatarKey) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockAvatarStorage) Delete(ctx context.Context, key valueobject.AvatarKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAvatarStorage) List(ctx context.Context) ([]service.StoredAvatar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.StoredAvatar), args.Error(1)
}

// MockAvatarProcessor is a mock of service.AvatarProcessor
type MockAvatarProcessor struct {
	mock.Mock
}

func NewMockAvatarProcessor(t *testing.T) *MockAvatarProcessor {
	m := &MockAvatarProcessor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAvatarProcessor) Normalize(data []byte) ([]byte, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
