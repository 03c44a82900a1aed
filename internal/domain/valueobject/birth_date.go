package valueobject

import (
	"errors"
	"time"
)

const (
	BirthDateLayout  = "2006-01-02"
	BirthDateMinYear = 1900
	MinimumAge       = 18
)

var (
	ErrBirthDateFormat   = errors.New("birth date must be in YYYY-MM-DD format")
	ErrBirthDateTooEarly = errors.New("invalid birth date - year must be greater than 1900")
	ErrBirthDateInFuture = errors.New("birth date cannot be in the future")
	ErrUnderage          = errors.New("you must be at least 18 years old to register")
)

// BirthDate は生年月日を表す値オブジェクト
type BirthDate struct {
	value time.Time
}

// ParseBirthDate はYYYY-MM-DD形式の文字列をnow基準で検証してBirthDateを生成します
func ParseBirthDate(s string, now time.Time) (BirthDate, error) {
	t, err := time.Parse(BirthDateLayout, s)
	if err != nil {
		return BirthDate{}, ErrBirthDateFormat
	}
	return NewBirthDate(t, now)
}

// NewBirthDate は日付をnow基準で検証してBirthDateを生成します
func NewBirthDate(date time.Time, now time.Time) (BirthDate, error) {
	d := truncateToDate(date)
	today := truncateToDate(now)

	if d.Year() < BirthDateMinYear {
		return BirthDate{}, ErrBirthDateTooEarly
	}
	if d.After(today) {
		return BirthDate{}, ErrBirthDateInFuture
	}
	if ageAt(d, today) < MinimumAge {
		return BirthDate{}, ErrUnderage
	}
	return BirthDate{value: d}, nil
}

// ReconstructBirthDate はDBからBirthDateを復元します
func ReconstructBirthDate(date time.Time) BirthDate {
	return BirthDate{value: truncateToDate(date)}
}

func (b BirthDate) Time() time.Time {
	return b.value
}

// String はYYYY-MM-DD形式の文字列を返します
func (b BirthDate) String() string {
	if b.IsZero() {
		return ""
	}
	return b.value.Format(BirthDateLayout)
}

// IsZero は未設定かどうかを判定します
func (b BirthDate) IsZero() bool {
	return b.value.IsZero()
}

// AgeAt は指定日時点の満年齢を返します
func (b BirthDate) AgeAt(now time.Time) int {
	return ageAt(b.value, truncateToDate(now))
}

func ageAt(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
