package valueobject

import (
	"errors"
	"strings"
)

const (
	// AvatarMaxBytes はアップロード可能なアバター画像の最大サイズです
	AvatarMaxBytes = 1 << 20
)

var (
	ErrUnsupportedImageFormat = errors.New("unsupported image format, allowed: jpeg, png, webp")
	ErrImageEmpty             = errors.New("image file is empty")
	ErrImageTooLarge          = errors.New("image file must not exceed 1 MB")
)

// ImageFormat はアバターとして受け付ける画像形式を表す値オブジェクト
type ImageFormat string

const (
	ImageFormatJPEG ImageFormat = "image/jpeg"
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatWebP ImageFormat = "image/webp"
)

// NewImageFormat はMIMEタイプからImageFormatを生成します。パラメータ部分は無視します。
func NewImageFormat(mimeType string) (ImageFormat, error) {
	base, _, _ := strings.Cut(mimeType, ";")
	f := ImageFormat(strings.ToLower(strings.TrimSpace(base)))
	switch f {
	case ImageFormatJPEG, ImageFormatPNG, ImageFormatWebP:
		return f, nil
	default:
		return "", ErrUnsupportedImageFormat
	}
}

// ValidateAvatarSize はアバター画像のサイズを検証します
func ValidateAvatarSize(size int) error {
	switch {
	case size <= 0:
		return ErrImageEmpty
	case size > AvatarMaxBytes:
		return ErrImageTooLarge
	default:
		return nil
	}
}

func (f ImageFormat) String() string {
	return string(f)
}
