package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

func TestNullableText(t *testing.T) {
	assert.False(t, nullableText("").Valid)

	v := nullableText("ann")
	assert.True(t, v.Valid)
	assert.Equal(t, "ann", v.String)
}

func TestNullableDate(t *testing.T) {
	assert.False(t, nullableDate(valueobject.BirthDate{}).Valid)

	b, err := valueobject.ParseBirthDate("1990-05-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	d := nullableDate(b)
	assert.True(t, d.Valid)
	assert.Equal(t, "1990-05-01", d.Time.Format("2006-01-02"))
}
