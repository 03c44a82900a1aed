package entity

import (
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

// UserGroup はユーザーの権限グループを定義します
type UserGroup struct {
	ID   int64
	Name valueobject.UserGroupName
}

// User はユーザーエンティティを定義します
// このサービスでは参照のみで、作成・更新は行いません
type User struct {
	ID        int64
	Email     string
	IsActive  bool
	GroupID   int64
	Group     *UserGroup
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin はユーザーが管理者グループに属するかを判定します
func (u *User) IsAdmin() bool {
	return u.Group != nil && u.Group.Name.IsAdmin()
}

// CanManageProfileOf は指定ユーザーのプロファイルを操作できるかを判定します
// 本人または管理者のみ許可されます
func (u *User) CanManageProfileOf(userID int64) bool {
	if !u.IsActive {
		return false
	}
	return u.ID == userID || u.IsAdmin()
}
