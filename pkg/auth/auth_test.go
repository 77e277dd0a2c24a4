package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef" // pragma: allowlist secret

func testConfig() *AuthConfig {
	cfg := NewAuthConfig()
	cfg.JWTSecret = testSecret
	return cfg
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())

	signed, expiresAt, err := issuer.Issue("user-1", "alice")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), expiresAt, time.Minute)

	token, err := issuer.Parse(signed)
	require.NoError(t, err)

	claims := NewsletterClaims(token.Claims.(jwt.MapClaims))
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	username, err := claims.GetUsername()
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.True(t, claims.VerifyIssuer("newsletter-manager", true))
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())

	expiredIssuer := NewTokenIssuer(testConfig())
	expiredIssuer.now = func() time.Time { return time.Now().Add(-24 * time.Hour) }
	expired, _, err := expiredIssuer.Issue("user-1", "alice")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = strings.Repeat("x", 32)
	wrongKey, _, err := NewTokenIssuer(otherCfg).Issue("user-1", "alice")
	require.NoError(t, err)

	otherIssuerCfg := testConfig()
	otherIssuerCfg.Issuer = "somebody-else"
	wrongIssuer, _, err := NewTokenIssuer(otherIssuerCfg).Issue("user-1", "alice")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired token":     expired,
		"wrong signing key": wrongKey,
		"wrong issuer":      wrongIssuer,
		"unsigned token":    noneToken,
		"garbage":           "not-a-token",
		"empty token":       "",
	}
	for name, tokenString := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Parse(tokenString)
			assert.Error(t, err)
		})
	}
}

func TestAuthenticationMiddleware(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	valid, _, err := issuer.Issue("user-1", "alice")
	require.NoError(t, err)

	tests := map[string]struct {
		path          string
		header        string
		expectedCode  int
		expectedClaim bool
	}{
		"missing header is rejected": {
			path:         "/api/newsletters_mgmt/v1/newsletters",
			expectedCode: http.StatusUnauthorized,
		},
		"invalid token is rejected": {
			path:         "/api/newsletters_mgmt/v1/newsletters",
			header:       "Bearer nope",
			expectedCode: http.StatusUnauthorized,
		},
		"valid token passes": {
			path:          "/api/newsletters_mgmt/v1/newsletters",
			header:        "Bearer " + valid,
			expectedCode:  http.StatusOK,
			expectedClaim: true,
		},
		"public path passes without token": {
			path:         "/api/newsletters_mgmt/v1/auth/token",
			expectedCode: http.StatusOK,
		},
		"exact public path passes without token": {
			path:         "/api/newsletters_mgmt",
			expectedCode: http.StatusOK,
		},
		"public path ignores invalid token": {
			path:         "/api/newsletters_mgmt/v1/auth/token",
			header:       "Bearer nope",
			expectedCode: http.StatusOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var hasClaims bool
			handler := NewAuthenticationMiddleware(issuer, "/api/newsletters_mgmt", "/api/newsletters_mgmt/v1/auth/")(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, err := GetClaimsFromContext(r.Context())
					hasClaims = err == nil
				}))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedClaim, hasClaims)
		})
	}
}

func TestGetClaimsFromContext_NoToken(t *testing.T) {
	_, err := GetClaimsFromContext(context.Background())
	assert.Error(t, err)
}

func TestNewsletterClaims_Missing(t *testing.T) {
	claims := NewsletterClaims(jwt.MapClaims{})
	_, err := claims.GetSubject()
	assert.Error(t, err)
	_, err = claims.GetUsername()
	assert.Error(t, err)
}

func TestAuthConfig_ReadFiles(t *testing.T) {
	secretFile := path.Join(t.TempDir(), "jwt.secret")
	require.NoError(t, os.WriteFile(secretFile, []byte(testSecret+"\n"), 0o600))

	cfg := NewAuthConfig()
	cfg.JWTSecretFile = secretFile
	require.NoError(t, cfg.ReadFiles())
	assert.Equal(t, testSecret, cfg.JWTSecret)
}

func TestAuthConfig_EnvOverride(t *testing.T) {
	t.Setenv("NEWSLETTER_JWT_SECRET", strings.Repeat("e", 40))
	cfg := NewAuthConfig()
	cfg.JWTSecretFile = ""
	require.NoError(t, cfg.ReadFiles())
	assert.Equal(t, strings.Repeat("e", 40), cfg.JWTSecret)
}

func TestAuthConfig_ShortSecretRejected(t *testing.T) {
	cfg := NewAuthConfig()
	cfg.JWTSecretFile = ""
	cfg.JWTSecret = "short"
	assert.Error(t, cfg.ReadFiles())

	cfg.JWTSecret = testSecret
	cfg.TokenLifetime = 0
	assert.Error(t, cfg.ReadFiles())
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "battery staple"))

	_, err = HashPassword("")
	assert.Error(t, err)
}
