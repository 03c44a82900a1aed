package valueobject

import "errors"

var (
	ErrInvalidGender = errors.New("gender must be one of: man, woman")
)

// Gender は性別を表す値オブジェクト
type Gender string

const (
	GenderMan   Gender = "man"
	GenderWoman Gender = "woman"
)

// NewGender は文字列からGenderを生成します
func NewGender(gender string) (Gender, error) {
	g := Gender(gender)
	if !g.IsValid() {
		return "", ErrInvalidGender
	}
	return g, nil
}

// IsValid は性別が有効かを判定します
func (g Gender) IsValid() bool {
	switch g {
	case GenderMan, GenderWoman:
		return true
	default:
		return false
	}
}

func (g Gender) String() string {
	return string(g)
}
