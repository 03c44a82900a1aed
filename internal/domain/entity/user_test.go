package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hiro-mackay/gc-profile/internal/domain/valueobject"
)

func TestUser_CanManageProfileOf(t *testing.T) {
	admin := &User{ID: 1, IsActive: true, Group: &UserGroup{Name: valueobject.UserGroupAdmin}}
	moderator := &User{ID: 2, IsActive: true, Group: &UserGroup{Name: valueobject.UserGroupModerator}}
	regular := &User{ID: 3, IsActive: true, Group: &UserGroup{Name: valueobject.UserGroupUser}}
	inactiveAdmin := &User{ID: 4, IsActive: false, Group: &UserGroup{Name: valueobject.UserGroupAdmin}}

	tests := []struct {
		name   string
		actor  *User
		target int64
		want   bool
	}{
		{"owner", regular, 3, true},
		{"admin on other user", admin, 3, true},
		{"moderator on other user", moderator, 3, false},
		{"regular on other user", regular, 2, false},
		{"inactive admin", inactiveAdmin, 3, false},
		{"no group loaded", &User{ID: 5, IsActive: true}, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanManageProfileOf(tt.target))
		})
	}
}
