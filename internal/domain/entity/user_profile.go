package entity

import (
	"errors"
	"time"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

var (
	ErrProfileUserRequired = errors.New("profile must belong to a user")
)

// UserProfile はユーザープロファイルエンティティを定義します
// 各項目は任意で、ゼロ値は未設定を表します
type UserProfile struct {
	ID          int64
	UserID      int64
	FirstName   valueobject.PersonName
	LastName    valueobject.PersonName
	Gender      valueobject.Gender
	DateOfBirth valueobject.BirthDate
	Info        valueobject.ProfileInfo
	AvatarURL   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserProfileParams はプロファイル作成時に受け付ける項目です
type UserProfileParams struct {
	UserID      int64
	FirstName   valueobject.PersonName
	LastName    valueobject.PersonName
	Gender      valueobject.Gender
	DateOfBirth valueobject.BirthDate
	Info        valueobject.ProfileInfo
	AvatarURL   string
}

// NewUserProfile は新しいUserProfileを作成します。IDはユーザーIDと同じ値です(1対1)。
func NewUserProfile(p UserProfileParams) (*UserProfile, error) {
	if p.UserID <= 0 {
		return nil, ErrProfileUserRequired
	}

	now := time.Now()
	return &UserProfile{
		ID:          p.UserID,
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Gender:      p.Gender,
		DateOfBirth: p.DateOfBirth,
		Info:        p.Info,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// HasAvatar はアバターが設定されているかを判定します
func (p *UserProfile) HasAvatar() bool {
	return p.AvatarURL != ""
}
