package services

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	mocket "github.com/selvatico/go-mocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/config"
	"github.com/stackrox/newsletter-manager/pkg/auth"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/errors"
)

func userRow(t *testing.T, active bool) map[string]interface{} {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	return map[string]interface{}{
		"id":            "u1",
		"username":      "alice",
		"email":         "alice@example.com",
		"password_hash": hash,
		"is_active":     active,
	}
}

func newTestUserService() UserService {
	groups := &config.PermissionGroupsConfig{
		Groups: []config.PermissionGroupConfiguration{{Group: "editors", Permissions: []string{"newsletters.set_body"}}},
	}
	return NewUserService(db.NewMockConnectionFactory(nil), groups)
}

func TestUserService_GetByIDIsCached(t *testing.T) {
	svc := newTestUserService()

	var loads int
	mocket.Catcher.Reset().NewMock().
		WithQuery(`SELECT * FROM "users" WHERE id = $1`).
		WithCallback(func(_ string, _ []driver.NamedValue) { loads++ }).
		WithReply([]map[string]interface{}{userRow(t, true)})

	first, svcErr := svc.GetByID(context.Background(), "u1")
	require.Nil(t, svcErr)
	second, svcErr := svc.GetByID(context.Background(), "u1")
	require.Nil(t, svcErr)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)
}

func TestUserService_GetByIDReloadsExpiredEntries(t *testing.T) {
	svc := &userService{
		connectionFactory: db.NewMockConnectionFactory(nil),
		groupsConfig:      config.NewPermissionGroupsConfig(),
		cache:             cache.New(10*time.Millisecond, time.Minute),
	}

	var loads int
	mocket.Catcher.Reset().NewMock().
		WithQuery(`SELECT * FROM "users" WHERE id = $1`).
		WithCallback(func(_ string, _ []driver.NamedValue) { loads++ }).
		WithReply([]map[string]interface{}{userRow(t, true)})

	_, svcErr := svc.GetByID(context.Background(), "u1")
	require.Nil(t, svcErr)
	time.Sleep(20 * time.Millisecond)
	_, svcErr = svc.GetByID(context.Background(), "u1")
	require.Nil(t, svcErr)

	assert.Equal(t, 2, loads)
	assert.LessOrEqual(t, userCacheExpiration, 5*time.Second)
}

func TestUserService_GetByIDNotFound(t *testing.T) {
	svc := newTestUserService()
	mocket.Catcher.Reset()

	_, svcErr := svc.GetByID(context.Background(), "ghost")
	require.NotNil(t, svcErr)
	assert.True(t, svcErr.Is404())
}

func TestUserService_Authenticate(t *testing.T) {
	tests := map[string]struct {
		rows     []map[string]interface{}
		password string
		wantCode errors.ServiceErrorCode
	}{
		"valid credentials": {
			rows:     []map[string]interface{}{userRow(t, true)},
			password: "correct horse",
		},
		"wrong password": {
			rows:     []map[string]interface{}{userRow(t, true)},
			password: "battery staple",
			wantCode: errors.ErrorInvalidPassword,
		},
		"unknown user": {
			password: "correct horse",
			wantCode: errors.ErrorInvalidPassword,
		},
		"inactive user": {
			rows:     []map[string]interface{}{userRow(t, false)},
			password: "correct horse",
			wantCode: errors.ErrorUnauthenticated,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			svc := newTestUserService()
			mocket.Catcher.Reset()
			if tc.rows != nil {
				mocket.Catcher.NewMock().WithQuery(`SELECT * FROM "users" WHERE username = $1`).WithReply(tc.rows)
			}

			user, svcErr := svc.Authenticate(context.Background(), "alice", tc.password)
			if tc.wantCode != 0 {
				require.NotNil(t, svcErr)
				assert.Equal(t, tc.wantCode, svcErr.Code)
				return
			}
			require.Nil(t, svcErr)
			assert.Equal(t, "alice", user.Username)
		})
	}
}

func TestUserService_CountUniqueEmails(t *testing.T) {
	svc := newTestUserService()
	mocket.Catcher.Reset().NewMock().
		WithQuery(`SELECT COUNT(DISTINCT("email")) FROM "users"`).
		WithReply([]map[string]interface{}{{"count": 2}})

	count, svcErr := svc.CountUniqueEmails(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, int64(2), count)
}

func TestUserService_GrantPermissionValidatesShape(t *testing.T) {
	svc := newTestUserService()
	mocket.Catcher.Reset()

	svcErr := svc.GrantPermission(context.Background(), "alice", "set_body")
	require.NotNil(t, svcErr)
	assert.Equal(t, errors.ErrorValidation, svcErr.Code)
}

func TestUserService_AddToGroupRequiresConfiguredGroup(t *testing.T) {
	svc := newTestUserService()
	mocket.Catcher.Reset()

	svcErr := svc.AddToGroup(context.Background(), "alice", "admins")
	require.NotNil(t, svcErr)
	assert.Equal(t, errors.ErrorValidation, svcErr.Code)
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	svc := newTestUserService()
	mocket.Catcher.Reset().NewMock().WithQuery(`INSERT INTO "users"`)

	user := &dbapi.User{Username: "bob", Email: "bob@example.com", IsActive: true}
	svcErr := svc.Create(context.Background(), user, "correct horse")
	require.Nil(t, svcErr)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "correct horse"))
}
