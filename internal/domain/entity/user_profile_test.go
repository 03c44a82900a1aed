package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

func TestNewUserProfile_CopiesParams(t *testing.T) {
	first, err := valueobject.NewPersonName("Ann")
	require.NoError(t, err)

	p, err := NewUserProfile(UserProfileParams{
		UserID:    7,
		FirstName: first,
		Gender:    valueobject.GenderWoman,
		AvatarURL: "http://minio/avatars/7_avatar.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, int64(7), p.UserID)
	assert.Equal(t, "ann", p.FirstName.Value())
	assert.True(t, p.LastName.IsEmpty())
	assert.Equal(t, valueobject.GenderWoman, p.Gender)
	assert.True(t, p.DateOfBirth.IsZero())
	assert.True(t, p.HasAvatar())
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewUserProfile_RequiresUser(t *testing.T) {
	_, err := NewUserProfile(UserProfileParams{})
	assert.ErrorIs(t, err, ErrProfileUserRequired)
}
