package repository

import (
	"context"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
)

// UserRepository はユーザーリポジトリインターフェースを定義します
type UserRepository interface {
	// FindByID はIDでユーザーを所属グループ付きで検索します
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}
