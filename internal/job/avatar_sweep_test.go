package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-profile/internal/job"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
	"github.com/Hiro-mackay/gc-profile/tests/testutil/mocks"
)

func TestAvatarSweepJob_Run(t *testing.T) {
	ctx := context.Background()
	profileRepo := mocks.NewMockUserProfileRepository(t)
	avatarStorage := mocks.NewMockAvatarStorage(t)

	old := time.Now().Add(-2 * time.Hour)
	avatarStorage.On("List", ctx).Return([]service.StoredAvatar{
		{Key: valueobject.NewAvatarKey(1), LastModified: old},        // 参照あり
		{Key: valueobject.NewAvatarKey(2), LastModified: old},        // プロファイルなし
		{Key: valueobject.NewAvatarKey(3), LastModified: old},        // アバター未設定
		{Key: valueobject.NewAvatarKey(4), LastModified: time.Now()}, // 猶予期間内
	}, nil)

	profileRepo.On("FindByUserID", ctx, int64(1)).Return(&entity.UserProfile{UserID: 1, AvatarURL: "http://x/avatars/1_avatar.jpg"}, nil)
	profileRepo.On("FindByUserID", ctx, int64(2)).Return(nil, apperror.NewNotFoundError("user profile"))
	profileRepo.On("FindByUserID", ctx, int64(3)).Return(&entity.UserProfile{UserID: 3}, nil)

	avatarStorage.On("Delete", ctx, valueobject.NewAvatarKey(2)).Return(nil)
	avatarStorage.On("Delete", ctx, valueobject.NewAvatarKey(3)).Return(errors.New("minio down"))

	deleted, err := job.NewAvatarSweepJob(profileRepo, avatarStorage, time.Hour).Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	profileRepo.AssertNotCalled(t, "FindByUserID", ctx, int64(4))
}

func TestAvatarSweepJob_Run_ListFails(t *testing.T) {
	ctx := context.Background()
	profileRepo := mocks.NewMockUserProfileRepository(t)
	avatarStorage := mocks.NewMockAvatarStorage(t)

	avatarStorage.On("List", ctx).Return(nil, errors.New("connection refused"))

	deleted, err := job.NewAvatarSweepJob(profileRepo, avatarStorage, 0).Run(ctx)

	assert.Error(t, err)
	assert.Zero(t, deleted)
}
