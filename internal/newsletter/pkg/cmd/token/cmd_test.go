package token

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/errors"
)

func TestRunToken(t *testing.T) {
	authConfig := auth.NewAuthConfig()
	authConfig.JWTSecret = "0123456789abcdef0123456789abcdef" // pragma: allowlist secret
	issuer := auth.NewTokenIssuer(authConfig)

	userService := &services.UserServiceMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*dbapi.User, *errors.ServiceError) {
			switch username {
			case "alice":
				return &dbapi.User{Meta: api.Meta{ID: "cn0alice"}, Username: "alice", IsActive: true}, nil
			case "bob":
				return &dbapi.User{Meta: api.Meta{ID: "cn0bob"}, Username: "bob"}, nil
			}
			return nil, errors.NotFound("user %q not found", username)
		},
	}

	var out bytes.Buffer
	require.NoError(t, RunToken(context.Background(), userService, issuer, "alice", &out))
	_, err := issuer.Parse(strings.TrimSpace(out.String()))
	assert.NoError(t, err)

	out.Reset()
	assert.Error(t, RunToken(context.Background(), userService, issuer, "bob", &out))
	assert.Error(t, RunToken(context.Background(), userService, issuer, "ghost", &out))
	assert.Empty(t, out.String())
}
