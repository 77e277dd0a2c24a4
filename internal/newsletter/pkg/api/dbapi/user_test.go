package dbapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasPerm(t *testing.T) {
	groups := PermissionGroups{
		"editors": {"newsletters.set_subject", "newsletters.set_body"},
	}

	tests := map[string]struct {
		user *User
		perm string
		want bool
	}{
		"nil user": {
			user: nil,
			perm: "newsletters.set_subject",
		},
		"inactive superuser holds nothing": {
			user: &User{IsSuperuser: true},
			perm: "newsletters.set_subject",
		},
		"active superuser holds everything": {
			user: &User{IsActive: true, IsSuperuser: true},
			perm: "newsletters.anything",
			want: true,
		},
		"direct permission": {
			user: &User{IsActive: true, Permissions: []UserPermission{{Permission: "newsletters.set_status"}}},
			perm: "newsletters.set_status",
			want: true,
		},
		"group permission": {
			user: &User{IsActive: true, Groups: []UserGroup{{GroupName: "editors"}}},
			perm: "newsletters.set_body",
			want: true,
		},
		"unknown group": {
			user: &User{IsActive: true, Groups: []UserGroup{{GroupName: "ghosts"}}},
			perm: "newsletters.set_body",
		},
		"staff is not a permission": {
			user: &User{IsActive: true, IsStaff: true},
			perm: "newsletters.set_body",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.HasPerm(tc.perm, groups))
		})
	}
}
