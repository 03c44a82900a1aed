package valueobject

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	ProfileInfoMaxLength = 1000
)

var (
	ErrProfileInfoBlank   = errors.New("info field cannot be empty or contain only spaces")
	ErrProfileInfoTooLong = errors.New("info too long")
)

// ProfileInfo は自己紹介文を表す値オブジェクト
type ProfileInfo struct {
	value string
}

// NewProfileInfo は文字列からProfileInfoを生成します。前後の空白は保持します。
func NewProfileInfo(info string) (ProfileInfo, error) {
	if IsBlankInfo(info) {
		return ProfileInfo{}, ErrProfileInfoBlank
	}
	if utf8.RuneCountInString(info) > ProfileInfoMaxLength {
		return ProfileInfo{}, ErrProfileInfoTooLong
	}
	return ProfileInfo{value: info}, nil
}

// IsBlankInfo は半角スペースを除くと空になる文字列かを判定します
// タブや改行だけの文字列は空とみなしません
func IsBlankInfo(info string) bool {
	return strings.ReplaceAll(info, " ", "") == ""
}

// ReconstructProfileInfo はDBからProfileInfoを復元します
func ReconstructProfileInfo(value string) ProfileInfo {
	return ProfileInfo{value: value}
}

func (i ProfileInfo) Value() string {
	return i.value
}

func (i ProfileInfo) IsEmpty() bool {
	return i.value == ""
}
