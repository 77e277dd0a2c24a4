package services

import (
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/errors"
)

// Owned is a record that belongs to exactly one user.
type Owned interface {
	GetOwnerID() string
}

// CheckOwnerOrStaff returns obj when user owns it or is a staff member or superuser.
// Any other user is denied with a Forbidden error.
func CheckOwnerOrStaff[T Owned](obj T, user *dbapi.User) (T, *errors.ServiceError) {
	var zero T
	if user == nil {
		return zero, errors.Unauthenticated("user not authenticated")
	}
	if obj.GetOwnerID() == user.ID || user.IsPrivileged() {
		return obj, nil
	}
	return zero, errors.Forbidden("user %q is not allowed to access this resource", user.Username)
}
