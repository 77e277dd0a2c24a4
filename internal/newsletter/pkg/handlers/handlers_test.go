package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/dbapi"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/api/public"
	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/api"
	"github.com/stackrox/newsletter-manager/pkg/errors"
	coreServices "github.com/stackrox/newsletter-manager/pkg/services"
)

var testUser = &dbapi.User{Meta: api.Meta{ID: "user-1"}, Username: "alice", IsActive: true}

func authenticated(r *http.Request, user *dbapi.User) *http.Request {
	return r.WithContext(WithPrincipal(r.Context(), user))
}

func TestClientHandler_CreateFromForm(t *testing.T) {
	service := &services.ClientServiceMock{
		CreateFunc: func(ctx context.Context, user *dbapi.User, client *dbapi.Client) *errors.ServiceError {
			client.ID = "client-1"
			client.OwnerID = user.ID
			return nil
		},
	}
	h := NewClientHandler(service)

	form := url.Values{"email": {"bob@example.com"}, "fio": {"Bob Smith"}, "comment": {"vip"}}
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Create(rec, authenticated(req, testUser))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, service.CreateCalls(), 1)
	call := service.CreateCalls()[0]
	assert.Equal(t, testUser, call.User)
	assert.Equal(t, "bob@example.com", call.Client.Email)
	assert.Equal(t, "Bob Smith", call.Client.Fio)
	assert.Equal(t, "vip", call.Client.Comment)

	var got public.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Client", got.Object)
	assert.Equal(t, "user-1", got.OwnerID)
}

func TestClientHandler_CreateFromJSON(t *testing.T) {
	service := &services.ClientServiceMock{
		CreateFunc: func(ctx context.Context, user *dbapi.User, client *dbapi.Client) *errors.ServiceError {
			return nil
		},
	}
	h := NewClientHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"email":"carol@example.com","fio":"Carol"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, authenticated(req, testUser))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, service.CreateCalls(), 1)
	assert.Equal(t, "carol@example.com", service.CreateCalls()[0].Client.Email)
}

func TestClientHandler_CreateMalformedJSON(t *testing.T) {
	service := &services.ClientServiceMock{}
	h := NewClientHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"email":`))
	rec := httptest.NewRecorder()
	h.Create(rec, authenticated(req, testUser))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.CreateCalls())
}

func TestClientHandler_NewCreatesNothing(t *testing.T) {
	service := &services.ClientServiceMock{}
	h := NewClientHandler(service)

	rec := httptest.NewRecorder()
	h.New(rec, authenticated(httptest.NewRequest(http.MethodGet, "/clients", nil), testUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"object":"Client"}`, rec.Body.String())
	assert.Empty(t, service.CreateCalls())
}

func TestNewsletterHandler_List(t *testing.T) {
	service := &services.NewsletterServiceMock{
		ListFunc: func(ctx context.Context, user *dbapi.User, listArgs *coreServices.ListArguments) (dbapi.NewsletterList, *api.PagingMeta, *errors.ServiceError) {
			return dbapi.NewsletterList{{Meta: api.Meta{ID: "n1"}, OwnerID: user.ID}},
				&api.PagingMeta{Page: listArgs.Page, Size: 1, Total: 1}, nil
		},
		StatsFunc: func(ctx context.Context) (*services.NewsletterStats, *errors.ServiceError) {
			return &services.NewsletterStats{MailingCount: 5, EnabledMailing: 4, UniqueUsers: 2}, nil
		},
	}
	h := NewNewsletterHandler(service)

	rec := httptest.NewRecorder()
	h.List(rec, authenticated(httptest.NewRequest(http.MethodGet, "/newsletters?page=2", nil), testUser))

	require.Equal(t, http.StatusOK, rec.Code)
	var got public.NewsletterList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int32(2), got.Page)
	assert.Equal(t, int64(5), got.MailingCount)
	assert.Equal(t, int64(4), got.EnabledMailing)
	assert.Equal(t, int64(2), got.UniqueUsers)
	require.Len(t, service.ListCalls(), 1)
	assert.Equal(t, testUser, service.ListCalls()[0].User)
}

func TestNewsletterHandler_ListRejectsBadPaging(t *testing.T) {
	service := &services.NewsletterServiceMock{}
	h := NewNewsletterHandler(service)

	rec := httptest.NewRecorder()
	h.List(rec, authenticated(httptest.NewRequest(http.MethodGet, "/newsletters?size=zero", nil), testUser))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.ListCalls())
}

func TestNewsletterHandler_GetForbidden(t *testing.T) {
	id := xid.New().String()
	service := &services.NewsletterServiceMock{
		GetFunc: func(ctx context.Context, user *dbapi.User, id string) (*dbapi.Newsletter, *errors.ServiceError) {
			return nil, errors.Forbidden("not the owner")
		},
	}
	h := NewNewsletterHandler(service)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/newsletters/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Get(rec, authenticated(req, testUser))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	var got api.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "NEWSLETTERS-MGMT-4", got.Code)
}

func TestNewsletterHandler_GetInvalidID(t *testing.T) {
	service := &services.NewsletterServiceMock{}
	h := NewNewsletterHandler(service)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/newsletters/nope", nil), map[string]string{"id": "nope"})
	rec := httptest.NewRecorder()
	h.Get(rec, authenticated(req, testUser))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, service.GetCalls())
}

func TestNewsletterHandler_Create(t *testing.T) {
	service := &services.NewsletterServiceMock{
		CreateFunc: func(ctx context.Context, user *dbapi.User, newsletter *dbapi.Newsletter) *errors.ServiceError {
			newsletter.ID = "n1"
			newsletter.OwnerID = user.ID
			return nil
		},
	}
	h := NewNewsletterHandler(service)

	body := `{"subject":"Weekly","body":"hello","send_time":"09:00","periodicity":"weekly"}`
	rec := httptest.NewRecorder()
	h.Create(rec, authenticated(httptest.NewRequest(http.MethodPost, "/newsletters", strings.NewReader(body)), testUser))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, service.CreateCalls(), 1)
	assert.True(t, service.CreateCalls()[0].Newsletter.IsActive)

	var got public.Newsletter
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.OwnerID)
	assert.Equal(t, "/api/newsletters_mgmt/v1/newsletters/n1", got.Href)
}

func TestNewsletterHandler_CreateRequiresSubject(t *testing.T) {
	service := &services.NewsletterServiceMock{}
	h := NewNewsletterHandler(service)

	rec := httptest.NewRecorder()
	h.Create(rec, authenticated(httptest.NewRequest(http.MethodPost, "/newsletters", strings.NewReader(`{"body":"x"}`)), testUser))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, service.CreateCalls())
}

func TestNewsletterHandler_UpdatePassesChanges(t *testing.T) {
	id := xid.New().String()
	service := &services.NewsletterServiceMock{
		UpdateFunc: func(ctx context.Context, user *dbapi.User, id string, changes services.NewsletterChanges) (*dbapi.Newsletter, *errors.ServiceError) {
			return &dbapi.Newsletter{Meta: api.Meta{ID: id}, Subject: *changes.Subject}, nil
		},
	}
	h := NewNewsletterHandler(service)

	req := httptest.NewRequest(http.MethodPatch, "/newsletters/"+id, strings.NewReader(`{"subject":"renamed"}`))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Update(rec, authenticated(req, testUser))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, service.UpdateCalls(), 1)
	changes := service.UpdateCalls()[0].Changes
	assert.Equal(t, "renamed", *changes.Subject)
	assert.Nil(t, changes.Body)
	assert.Nil(t, changes.IsActive)
}

func TestNewsletterHandler_Delete(t *testing.T) {
	id := xid.New().String()
	service := &services.NewsletterServiceMock{
		DeleteFunc: func(ctx context.Context, user *dbapi.User, id string) *errors.ServiceError {
			return nil
		},
	}
	h := NewNewsletterHandler(service)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/newsletters/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Delete(rec, authenticated(req, testUser))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, service.DeleteCalls(), 1)
	assert.Equal(t, id, service.DeleteCalls()[0].ID)
}

func TestNewsletterLogHandler_List(t *testing.T) {
	service := &services.NewsletterLogServiceMock{
		ListFunc: func(ctx context.Context, listArgs *coreServices.ListArguments) (dbapi.NewsletterLogList, *api.PagingMeta, *errors.ServiceError) {
			return dbapi.NewsletterLogList{{ID: "l2", Status: true}, {ID: "l1", Status: true}},
				&api.PagingMeta{Page: 1, Size: 2, Total: 2}, nil
		},
	}
	h := NewNewsletterLogHandler(service)

	rec := httptest.NewRecorder()
	h.List(rec, authenticated(httptest.NewRequest(http.MethodGet, "/newsletter_logs", nil), testUser))

	require.Equal(t, http.StatusOK, rec.Code)
	var got public.NewsletterLogList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Logs", got.Title)
	assert.Equal(t, []string{"l2", "l1"}, []string{got.Items[0].ID, got.Items[1].ID})
}
