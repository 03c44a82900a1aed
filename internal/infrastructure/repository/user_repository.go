package repository

import (
	"context"

	"github.com/Hiro-mackay/gc-profile/internal/domain/entity"
	"github.com/Hiro-mackay/gc-profile/internal/domain/repository"
	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
	"github.com/Hiro-mackay/gc-profile/internal/infrastructure/database"
	"github.com/Hiro-mackay/gc-profile/pkg/apperror"
)

const findUserByIDQuery = `
SELECT u.id, u.email, u.is_active, u.group_id, u.created_at, u.updated_at, g.id, g.name
FROM users u
JOIN user_groups g ON g.id = u.group_id
WHERE u.id = $1`

// UserRepository はユーザーリポジトリの実装です
type UserRepository struct {
	*database.BaseRepository
}

// NewUserRepository は新しいUserRepositoryを作成します
func NewUserRepository(txManager *database.TxManager) *UserRepository {
	return &UserRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// FindByID はIDでユーザーを所属グループ付きで検索します
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var (
		user      entity.User
		group     entity.UserGroup
		groupName string
	)

	err := r.Querier(ctx).QueryRow(ctx, findUserByIDQuery, id).Scan(
		&user.ID,
		&user.Email,
		&user.IsActive,
		&user.GroupID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&group.ID,
		&groupName,
	)
	if err != nil {
		err = r.HandleError(err)
		if database.IsNotFoundError(err) {
			return nil, apperror.NewNotFoundError("user")
		}
		return nil, err
	}

	group.Name = valueobject.UserGroupName(groupName)
	user.Group = &group

	return &user, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
