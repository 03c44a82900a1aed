package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewImageFormat(t *testing.T) {
	f, err := NewImageFormat("image/PNG")
	assert.NoError(t, err)
	assert.Equal(t, ImageFormatPNG, f)

	f, err = NewImageFormat("image/jpeg; charset=binary")
	assert.NoError(t, err)
	assert.Equal(t, ImageFormatJPEG, f)

	_, err = NewImageFormat("image/gif")
	assert.ErrorIs(t, err, ErrUnsupportedImageFormat)

	_, err = NewImageFormat("application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedImageFormat)
}

func TestValidateAvatarSize(t *testing.T) {
	assert.ErrorIs(t, ValidateAvatarSize(0), ErrImageEmpty)
	assert.NoError(t, ValidateAvatarSize(AvatarMaxBytes))
	assert.ErrorIs(t, ValidateAvatarSize(AvatarMaxBytes+1), ErrImageTooLarge)
}
