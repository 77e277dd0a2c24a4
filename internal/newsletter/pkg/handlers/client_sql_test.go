package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackrox/newsletter-manager/internal/newsletter/pkg/services"
	"github.com/stackrox/newsletter-manager/pkg/db"
)

func newClientRoute(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	factory, mock, err := db.NewSQLMockConnectionFactory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = factory.Close() })

	h := NewClientHandler(services.NewClientService(factory))
	route := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = authenticated(r, testUser)
		if r.Method == http.MethodPost {
			h.Create(w, r)
			return
		}
		h.New(w, r)
	})
	return db.TransactionMiddleware(factory)(route), mock
}

func TestClientRoute_PostInsertsExactlyOneRow(t *testing.T) {
	route, mock := newClientRoute(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "clients"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"bob@example.com", "Bob Smith", "vip", testUser.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	form := url.Values{"email": {"bob@example.com"}, "fio": {"Bob Smith"}, "comment": {"vip"}}
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	route.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRoute_GetWritesNothing(t *testing.T) {
	route, mock := newClientRoute(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rec := httptest.NewRecorder()
	route.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"object":"Client"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
