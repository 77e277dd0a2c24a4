package services

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/bxcodec/faker/v3"
	mocket "github.com/selvatico/go-mocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/db"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	coreServices "github.com/stackrox/newsletter-manager/pkg/services"
)

const (
	ownerID = "owner"
	otherID = "other"
)

func newsletterRow(id, owner string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"owner_id":    owner,
		"subject":     "Weekly digest",
		"body":        "Hello",
		"send_time":   "09:30",
		"periodicity": "weekly",
		"status":      "created",
		"is_active":   true,
	}
}

func newTestNewsletterService(userService UserService) (NewsletterService, *db.ConnectionFactory) {
	connectionFactory := db.NewMockConnectionFactory(nil)
	if userService == nil {
		userService = &UserServiceMock{
			PermissionGroupsFunc: func() dbapi.PermissionGroups { return nil },
		}
	}
	return NewNewsletterService(connectionFactory, NewNewsletterLogService(connectionFactory), userService), connectionFactory
}

func TestNewsletterService_ListScopesByOwnerUnlessStaff(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)
	listArgs := &coreServices.ListArguments{Page: 1, Size: 100}

	tests := map[string]struct {
		user       *dbapi.User
		wantOwners []string
	}{
		"staff sees every newsletter": {
			user:       &dbapi.User{Meta: api.Meta{ID: "staff"}, IsActive: true, IsStaff: true},
			wantOwners: []string{ownerID, otherID},
		},
		"non staff sees own newsletters": {
			user:       &dbapi.User{Meta: api.Meta{ID: ownerID}, IsActive: true},
			wantOwners: []string{ownerID},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var scopedArgs []driver.NamedValue
			mocket.Catcher.Reset()
			mocket.Catcher.NewMock().
				WithQuery(`SELECT count(*) FROM "newsletters" WHERE owner_id = $1`).
				WithReply([]map[string]interface{}{{"count": 1}})
			mocket.Catcher.NewMock().
				WithQuery(`SELECT * FROM "newsletters" WHERE owner_id = $1`).
				WithCallback(func(_ string, args []driver.NamedValue) { scopedArgs = args }).
				WithReply([]map[string]interface{}{newsletterRow("n1", ownerID)})
			mocket.Catcher.NewMock().
				WithQuery(`SELECT count(*) FROM "newsletters" WHERE "newsletters"."deleted_at" IS NULL`).
				WithReply([]map[string]interface{}{{"count": 2}})
			mocket.Catcher.NewMock().
				WithQuery(`SELECT * FROM "newsletters" WHERE "newsletters"."deleted_at" IS NULL`).
				WithReply([]map[string]interface{}{newsletterRow("n1", ownerID), newsletterRow("n2", otherID)})

			newsletters, paging, svcErr := svc.List(context.Background(), tc.user, listArgs)
			require.Nil(t, svcErr)

			var owners []string
			for _, n := range newsletters {
				owners = append(owners, n.OwnerID)
			}
			assert.Equal(t, tc.wantOwners, owners)
			assert.Equal(t, int64(len(tc.wantOwners)), paging.Total)
			if !tc.user.IsStaff {
				require.NotEmpty(t, scopedArgs)
				assert.Equal(t, tc.user.ID, scopedArgs[0].Value)
			}
		})
	}
}

func TestNewsletterService_ListRequiresUser(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)
	_, _, svcErr := svc.List(context.Background(), nil, &coreServices.ListArguments{Page: 1, Size: 1})
	require.NotNil(t, svcErr)
	assert.Equal(t, errors.ErrorUnauthenticated, svcErr.Code)
}

func TestNewsletterService_Stats(t *testing.T) {
	logService := &NewsletterLogServiceMock{
		CountFunc: func(ctx context.Context) (int64, *errors.ServiceError) {
			return 3, nil
		},
		CountByStatusFunc: func(ctx context.Context, status bool) (int64, *errors.ServiceError) {
			return 2, nil
		},
	}
	userService := &UserServiceMock{
		CountUniqueEmailsFunc: func(ctx context.Context) (int64, *errors.ServiceError) {
			return 4, nil
		},
	}
	svc := NewNewsletterService(db.NewMockConnectionFactory(nil), logService, userService)

	stats, svcErr := svc.Stats(context.Background())
	require.Nil(t, svcErr)
	assert.Equal(t, &NewsletterStats{MailingCount: 3, EnabledMailing: 2, UniqueUsers: 4}, stats)
	require.Len(t, logService.CountByStatusCalls(), 1)
	assert.True(t, logService.CountByStatusCalls()[0].Status)

	// counters are recomputed on every call
	_, _ = svc.Stats(context.Background())
	assert.Len(t, logService.CountCalls(), 2)
}

func TestNewsletterService_StatsPropagatesErrors(t *testing.T) {
	logService := &NewsletterLogServiceMock{
		CountFunc: func(ctx context.Context) (int64, *errors.ServiceError) {
			return 0, errors.GeneralError("boom")
		},
	}
	svc := NewNewsletterService(db.NewMockConnectionFactory(nil), logService, &UserServiceMock{})

	_, svcErr := svc.Stats(context.Background())
	require.NotNil(t, svcErr)
	assert.True(t, svcErr.IsServerErrorClass())
}

func TestNewsletterService_Get(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)

	mocket.Catcher.Reset().NewMock().
		WithQuery(`SELECT * FROM "newsletters" WHERE id = $1`).
		WithReply([]map[string]interface{}{newsletterRow("n1", ownerID)})

	got, svcErr := svc.Get(context.Background(), &dbapi.User{Meta: api.Meta{ID: ownerID}}, "n1")
	require.Nil(t, svcErr)
	assert.Equal(t, "n1", got.ID)

	_, svcErr = svc.Get(context.Background(), &dbapi.User{Meta: api.Meta{ID: otherID}}, "n1")
	require.NotNil(t, svcErr)
	assert.Equal(t, errors.ErrorForbidden, svcErr.Code)
}

func TestNewsletterService_GetNotFound(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)
	mocket.Catcher.Reset()

	_, svcErr := svc.Get(context.Background(), &dbapi.User{Meta: api.Meta{ID: ownerID}}, "missing")
	require.NotNil(t, svcErr)
	assert.True(t, svcErr.Is404())
}

func TestNewsletterService_CreateForcesOwner(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)

	var insertArgs []driver.NamedValue
	mocket.Catcher.Reset().NewMock().
		WithQuery(`INSERT INTO "newsletters"`).
		WithCallback(func(_ string, args []driver.NamedValue) { insertArgs = args })

	user := &dbapi.User{Meta: api.Meta{ID: ownerID}, IsActive: true}
	newsletter := &dbapi.Newsletter{
		OwnerID:     otherID,
		Subject:     faker.Sentence(),
		Body:        faker.Paragraph(),
		SendTime:    "08:00",
		Periodicity: dbapi.PeriodicityDaily,
		IsActive:    true,
	}

	svcErr := svc.Create(context.Background(), user, newsletter)
	require.Nil(t, svcErr)
	assert.Equal(t, ownerID, newsletter.OwnerID)
	assert.Equal(t, dbapi.NewsletterStatusCreated, newsletter.Status)
	assert.NotEmpty(t, newsletter.ID)
	assert.NotEmpty(t, insertArgs)
}

func TestNewsletterService_CreateValidates(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)
	mocket.Catcher.Reset()

	svcErr := svc.Create(context.Background(), &dbapi.User{Meta: api.Meta{ID: ownerID}}, &dbapi.Newsletter{Subject: "x"})
	require.NotNil(t, svcErr)
	assert.True(t, svcErr.IsClientErrorClass())
}

func TestNewsletterService_UpdateAppliesOnlyPermittedFields(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)

	var updateQuery string
	mocket.Catcher.Reset()
	mocket.Catcher.NewMock().
		WithQuery(`SELECT * FROM "newsletters" WHERE id = $1`).
		WithReply([]map[string]interface{}{newsletterRow("n1", ownerID)})
	mocket.Catcher.NewMock().
		WithQuery(`UPDATE "newsletters"`).
		WithCallback(func(query string, _ []driver.NamedValue) { updateQuery = query })

	editor := &dbapi.User{
		Meta:        api.Meta{ID: otherID},
		IsActive:    true,
		IsStaff:     true,
		Permissions: []dbapi.UserPermission{{Permission: SetFieldPermission(FieldStatus)}},
	}
	updated, svcErr := svc.Update(context.Background(), editor, "n1", NewsletterChanges{
		Subject: strPtr("Hijacked"),
		Status:  strPtr(string(dbapi.NewsletterStatusStarted)),
	})
	require.Nil(t, svcErr)
	assert.Equal(t, dbapi.NewsletterStatusStarted, updated.Status)
	assert.Equal(t, "Weekly digest", updated.Subject)
	assert.Contains(t, updateQuery, `"status"`)
	assert.NotContains(t, updateQuery, `"subject"`)
}

func TestNewsletterService_UpdateWithoutPermittedChangesIsANoop(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)

	mocket.Catcher.Reset()
	mocket.Catcher.NewMock().
		WithQuery(`SELECT * FROM "newsletters" WHERE id = $1`).
		WithReply([]map[string]interface{}{newsletterRow("n1", ownerID)})
	update := mocket.Catcher.NewMock().WithQuery(`UPDATE "newsletters"`)

	staff := &dbapi.User{Meta: api.Meta{ID: otherID}, IsActive: true, IsStaff: true}
	got, svcErr := svc.Update(context.Background(), staff, "n1", NewsletterChanges{Subject: strPtr("Hijacked")})
	require.Nil(t, svcErr)
	assert.Equal(t, "Weekly digest", got.Subject)
	assert.False(t, update.Triggered)
}

func TestNewsletterService_DeleteIsGuarded(t *testing.T) {
	svc, _ := newTestNewsletterService(nil)

	mocket.Catcher.Reset()
	mocket.Catcher.NewMock().
		WithQuery(`SELECT * FROM "newsletters" WHERE id = $1`).
		WithReply([]map[string]interface{}{newsletterRow("n1", ownerID)})
	softDelete := mocket.Catcher.NewMock().WithQuery(`UPDATE "newsletters" SET "deleted_at"`)

	svcErr := svc.Delete(context.Background(), &dbapi.User{Meta: api.Meta{ID: otherID}}, "n1")
	require.NotNil(t, svcErr)
	assert.True(t, svcErr.IsForbidden())
	assert.False(t, softDelete.Triggered)

	svcErr = svc.Delete(context.Background(), &dbapi.User{Meta: api.Meta{ID: ownerID}}, "n1")
	require.Nil(t, svcErr)
	assert.True(t, softDelete.Triggered)
}
