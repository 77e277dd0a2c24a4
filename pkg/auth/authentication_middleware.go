package auth

import (
	"net/http"
	"strings"

	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

const bearerPrefix = "Bearer "

// NewAuthenticationMiddleware rejects requests without a valid bearer token. Requests matching one of
// publicPaths pass through. A public path ending in "/" matches as a prefix, any other must match exactly.
func NewAuthenticationMiddleware(issuer *TokenIssuer, publicPaths ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			public := isPublic(r.URL.Path, publicPaths)

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				shared.HandleError(r, w, errors.Unauthenticated("Request doesn't contain the 'Authorization' header or the bearer token"))
				return
			}

			token, err := issuer.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				if public {
					next.ServeHTTP(w, r)
					return
				}
				shared.HandleError(r, w, errors.Unauthenticated("Bearer token can't be verified"))
				return
			}

			next.ServeHTTP(w, r.WithContext(SetTokenInContext(r.Context(), token)))
		})
	}
}

func isPublic(path string, publicPaths []string) bool {
	for _, p := range publicPaths {
		if strings.HasSuffix(p, "/") && strings.HasPrefix(path, p) {
			return true
		}
		if path == p {
			return true
		}
	}
	return false
}
