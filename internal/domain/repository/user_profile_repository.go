package repository

import (
	"context"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
)

// UserProfileRepository はユーザープロファイルリポジトリインターフェースを定義します
type UserProfileRepository interface {
	// Create はプロファイルを作成し、採番されたIDを設定します。
	// 同一ユーザーのプロファイルが既に存在する場合は一意制約違反を返します。
	Create(ctx context.Context, profile *entity.UserProfile) error

	// FindByUserID はユーザーIDでプロファイルを検索します
	FindByUserID(ctx context.Context, userID int64) (*entity.UserProfile, error)

	// ExistsByUserID はユーザーのプロファイルが存在するかを確認します
	ExistsByUserID(ctx context.Context, userID int64) (bool, error)
}
