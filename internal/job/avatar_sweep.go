package job

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/domain/repository"
	"github.com/Hiro-mackay/gc-profile/internal/domain/service"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

// defaultAvatarGracePeriod はアップロード直後の画像を対象外にする猶予です
// プロファイル登録前のアップロードを誤って削除しないために使います
const defaultAvatarGracePeriod = time.Hour

// AvatarSweepJob はどのプロファイルからも参照されていないアバター画像を削除します
// 登録失敗時の削除が失敗した場合の取りこぼしを回収します
type AvatarSweepJob struct {
	profileRepo   repository.UserProfileRepository
	avatarStorage service.AvatarStorage
	gracePeriod   time.Duration
	now           func() time.Time
}

// NewAvatarSweepJob creates a new AvatarSweepJob.
func NewAvatarSweepJob(
	profileRepo repository.UserProfileRepository,
	avatarStorage service.AvatarStorage,
	gracePeriod time.Duration,
) *AvatarSweepJob {
	if gracePeriod <= 0 {
		gracePeriod = defaultAvatarGracePeriod
	}
	return &AvatarSweepJob{
		profileRepo:   profileRepo,
		avatarStorage: avatarStorage,
		gracePeriod:   gracePeriod,
		now:           time.Now,
	}
}

// Run は1回分の削除を実行し、削除した件数を返します
// 個々の削除失敗はログに残して続行します
func (j *AvatarSweepJob) Run(ctx context.Context) (int, error) {
	avatars, err := j.avatarStorage.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("avatar sweep: list failed: %w", err)
	}

	cutoff := j.now().Add(-j.gracePeriod)
	deleted := 0

	for _, avatar := range avatars {
		if ctx.Err() != nil {
			return deleted, ctx.Err()
		}
		if avatar.LastModified.After(cutoff) {
			continue
		}

		orphaned, err := j.isOrphaned(ctx, avatar.Key.UserID())
		if err != nil {
			slog.Error("avatar sweep: profile lookup failed", "key", avatar.Key.Value(), "error", err)
			continue
		}
		if !orphaned {
			continue
		}

		if err := j.avatarStorage.Delete(ctx, avatar.Key); err != nil {
			slog.Error("avatar sweep: delete failed", "key", avatar.Key.Value(), "error", err)
			continue
		}
		deleted++
	}

	return deleted, nil
}

// isOrphaned はユーザーのプロファイルが存在しない、またはアバターを持たない場合にtrueを返します
func (j *AvatarSweepJob) isOrphaned(ctx context.Context, userID int64) (bool, error) {
	profile, err := j.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return true, nil
		}
		return false, err
	}
	return !profile.HasAvatar(), nil
}
