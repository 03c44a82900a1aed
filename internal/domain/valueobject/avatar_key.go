package valueobject

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	avatarKeyPrefix = "avatars/"
	avatarKeySuffix = "_avatar.jpg"
)

var ErrInvalidAvatarKey = errors.New("invalid avatar key")

// AvatarKey はアバター画像のオブジェクトキーを表す値オブジェクト
// 形式: avatars/{user_id}_avatar.jpg
type AvatarKey struct {
	value  string
	userID int64
}

// NewAvatarKey はユーザーIDからAvatarKeyを生成します
func NewAvatarKey(userID int64) AvatarKey {
	return AvatarKey{
		value:  fmt.Sprintf("%s%d%s", avatarKeyPrefix, userID, avatarKeySuffix),
		userID: userID,
	}
}

// ParseAvatarKey はオブジェクトキーを解析します
// 形式に合わないキーはErrInvalidAvatarKeyを返します
func ParseAvatarKey(key string) (AvatarKey, error) {
	rest, ok := strings.CutPrefix(key, avatarKeyPrefix)
	if !ok {
		return AvatarKey{}, ErrInvalidAvatarKey
	}
	idPart, ok := strings.CutSuffix(rest, avatarKeySuffix)
	if !ok {
		return AvatarKey{}, ErrInvalidAvatarKey
	}
	userID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		return AvatarKey{}, ErrInvalidAvatarKey
	}
	return NewAvatarKey(userID), nil
}

func (k AvatarKey) Value() string {
	return k.value
}

// UserID はキーの持ち主のユーザーIDを返します
func (k AvatarKey) UserID() int64 {
	return k.userID
}

func (k AvatarKey) String() string {
	return k.value
}
