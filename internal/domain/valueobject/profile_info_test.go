package valueobject

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProfileInfo(t *testing.T) {
	info, err := NewProfileInfo("  likes hiking ")
	assert.NoError(t, err)
	assert.Equal(t, "  likes hiking ", info.Value())

	_, err = NewProfileInfo("")
	assert.ErrorIs(t, err, ErrProfileInfoBlank)

	_, err = NewProfileInfo("    ")
	assert.ErrorIs(t, err, ErrProfileInfoBlank)

	info, err = NewProfileInfo("\t\n")
	assert.NoError(t, err)
	assert.Equal(t, "\t\n", info.Value())

	_, err = NewProfileInfo(strings.Repeat("あ", ProfileInfoMaxLength+1))
	assert.ErrorIs(t, err, ErrProfileInfoTooLong)
}
