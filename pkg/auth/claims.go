// Package auth issues and verifies the bearer tokens of the newsletter API.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/openshift-online/ocm-sdk-go/authentication"
)

const (
	subClaim      = "sub"
	usernameClaim = "username"
)

// NewsletterClaims ...
type NewsletterClaims jwt.MapClaims

// VerifyIssuer ...
func (c *NewsletterClaims) VerifyIssuer(cmp string, req bool) bool {
	return jwt.MapClaims(*c).VerifyIssuer(cmp, req)
}

// GetSubject returns the subject claim of the token, the ID of the authenticated user.
func (c *NewsletterClaims) GetSubject() (string, error) {
	if sub, ok := (*c)[subClaim].(string); ok && sub != "" {
		return sub, nil
	}
	return "", fmt.Errorf("can't find %q attribute in claims", subClaim)
}

// GetUsername ...
func (c *NewsletterClaims) GetUsername() (string, error) {
	if username, ok := (*c)[usernameClaim].(string); ok && username != "" {
		return username, nil
	}
	return "", fmt.Errorf("can't find %q attribute in claims", usernameClaim)
}

// GetClaimsFromContext returns the claims of the token stored in ctx by the authentication middleware.
func GetClaimsFromContext(ctx context.Context) (NewsletterClaims, error) {
	token, err := authentication.TokenFromContext(ctx)
	if err != nil {
		return NewsletterClaims{}, fmt.Errorf("getting token from context: %w", err)
	}
	if token == nil {
		return NewsletterClaims{}, fmt.Errorf("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return NewsletterClaims{}, fmt.Errorf("unexpected claims type %T", token.Claims)
	}
	return NewsletterClaims(claims), nil
}

// SetTokenInContext ...
func SetTokenInContext(ctx context.Context, token *jwt.Token) context.Context {
	return authentication.ContextWithToken(ctx, token)
}
