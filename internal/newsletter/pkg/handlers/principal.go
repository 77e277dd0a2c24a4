// Package handlers contains the REST handlers of the newsletters_mgmt API.
package handlers

import (
	"context"
	"net/http"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/logger"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying user.
func WithPrincipal(ctx context.Context, user *dbapi.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// PrincipalFromContext returns the authenticated user of the request, or nil.
func PrincipalFromContext(ctx context.Context) *dbapi.User {
	user, _ := ctx.Value(principalKey{}).(*dbapi.User)
	return user
}

// RequirePrincipal resolves the subject of the bearer token to an active user and stores it in the request context.
func RequirePrincipal(userService services.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			claims, err := auth.GetClaimsFromContext(ctx)
			if err != nil {
				shared.HandleError(r, w, errors.NewWithCause(errors.ErrorUnauthenticated, err, "Unable to get claims from the request"))
				return
			}
			subject, err := claims.GetSubject()
			if err != nil {
				shared.HandleError(r, w, errors.NewWithCause(errors.ErrorUnauthenticated, err, "Bearer token has no subject"))
				return
			}
			user, svcErr := userService.GetByID(ctx, subject)
			if svcErr != nil {
				if svcErr.Is404() {
					shared.HandleError(r, w, errors.Unauthenticated("Account %q does not exist", subject))
					return
				}
				shared.HandleError(r, w, svcErr)
				return
			}
			if !user.IsActive {
				shared.HandleError(r, w, errors.Unauthenticated("Account %q is inactive", user.Username))
				return
			}
			logger.NewUHCLogger(ctx).V(10).Infof("request authenticated as %q", user.Username)
			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, user)))
		})
	}
}

// RequirePermission rejects principals lacking perm. When enabled is false every principal passes.
func RequirePermission(userService services.UserService, perm string, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := PrincipalFromContext(r.Context())
			if user == nil {
				shared.HandleError(r, w, errors.Unauthenticated("Request has no authenticated account"))
				return
			}
			if !userService.HasPerm(user, perm) {
				shared.HandleError(r, w, errors.Forbidden("Account %q lacks permission %q", user.Username, perm))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
