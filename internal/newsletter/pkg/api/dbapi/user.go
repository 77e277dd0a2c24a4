// Package dbapi ...
package dbapi

import (
	"regexp"

	"github.com/stackrox/newsletter-manager/pkg/api"
)

// PermissionGroups maps a group name to the permissions it grants.
type PermissionGroups map[string][]string

// User is an account able to authenticate against the API.
type User struct {
	api.Meta
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	// Email is not unique, several accounts may share one.
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
	// IsStaff grants access to every newsletter regardless of its owner.
	IsStaff     bool             `json:"is_staff"`
	IsSuperuser bool             `json:"is_superuser"`
	Permissions []UserPermission `json:"permissions,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Groups      []UserGroup      `json:"groups,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// UserPermission is a permission granted directly to a user, e.g. newsletters.set_subject.
type UserPermission struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"uniqueIndex:idx_user_permission;not null"`
	Permission string `gorm:"uniqueIndex:idx_user_permission;not null"`
}

// UserGroup is the membership of a user in a permission group.
type UserGroup struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex:idx_user_group;not null"`
	GroupName string `gorm:"uniqueIndex:idx_user_group;not null"`
}

// IsPrivileged reports whether the user bypasses owner-only restrictions.
func (u *User) IsPrivileged() bool {
	return u.IsStaff || u.IsSuperuser
}

// HasPerm reports whether the user holds perm, either directly or through one of its groups.
// Inactive users hold no permission and active superusers hold all of them.
func (u *User) HasPerm(perm string, groups PermissionGroups) bool {
	if u == nil || !u.IsActive {
		return false
	}
	if u.IsSuperuser {
		return true
	}
	for _, p := range u.Permissions {
		if p.Permission == perm {
			return true
		}
	}
	for _, g := range u.Groups {
		for _, p := range groups[g.GroupName] {
			if p == perm {
				return true
			}
		}
	}
	return false
}

// PermissionNames ...
func (u *User) PermissionNames() []string {
	names := make([]string, 0, len(u.Permissions))
	for _, p := range u.Permissions {
		names = append(names, p.Permission)
	}
	return names
}

// GroupNames ...
func (u *User) GroupNames() []string {
	names := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		names = append(names, g.GroupName)
	}
	return names
}

var validPermissionRegexp = regexp.MustCompile(`^[a-z_]+\.[a-z_]+$`)

// IsValidPermission reports whether perm has the <app>.<codename> shape, e.g. newsletters.set_subject.
func IsValidPermission(perm string) bool {
	return validPermissionRegexp.MatchString(perm)
}
