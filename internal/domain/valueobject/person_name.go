package valueobject

import (
	"errors"
	"strings"
)

const (
	PersonNameMaxLength = 100
)

var (
	ErrPersonNameEmpty        = errors.New("name cannot be empty")
	ErrPersonNameTooLong      = errors.New("name too long")
	ErrPersonNameInvalidChars = errors.New("name must contain only English letters")
)

// PersonName は氏名(名・姓)を表す値オブジェクト
// 英字のみを受け付け、小文字に正規化して保持します
type PersonName struct {
	value string
}

// NewPersonName は文字列からPersonNameを生成します
func NewPersonName(name string) (PersonName, error) {
	if name == "" {
		return PersonName{}, ErrPersonNameEmpty
	}
	if len(name) > PersonNameMaxLength {
		return PersonName{}, ErrPersonNameTooLong
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return PersonName{}, ErrPersonNameInvalidChars
		}
	}
	return PersonName{value: strings.ToLower(name)}, nil
}

// ReconstructPersonName はDBからPersonNameを復元します
func ReconstructPersonName(value string) PersonName {
	return PersonName{value: value}
}

func (n PersonName) Value() string {
	return n.value
}

func (n PersonName) String() string {
	return n.value
}

// IsEmpty は未設定かどうかを判定します
func (n PersonName) IsEmpty() bool {
	return n.value == ""
}
