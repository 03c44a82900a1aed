package valueobject

import "errors"

var (
	ErrInvalidUserGroupName = errors.New("invalid user group name")
)

// UserGroupName はユーザーが所属する権限グループ名を表す値オブジェクト
type UserGroupName string

const (
	UserGroupUser      UserGroupName = "user"
	UserGroupModerator UserGroupName = "moderator"
	UserGroupAdmin     UserGroupName = "admin"
)

// NewUserGroupName は文字列からUserGroupNameを生成します
func NewUserGroupName(name string) (UserGroupName, error) {
	g := UserGroupName(name)
	if !g.IsValid() {
		return "", ErrInvalidUserGroupName
	}
	return g, nil
}

// IsValid はグループ名が有効かを判定します
func (g UserGroupName) IsValid() bool {
	switch g {
	case UserGroupUser, UserGroupModerator, UserGroupAdmin:
		return true
	default:
		return false
	}
}

func (g UserGroupName) String() string {
	return string(g)
}

// IsAdmin は管理者グループかを判定します
func (g UserGroupName) IsAdmin() bool {
	return g == UserGroupAdmin
}
