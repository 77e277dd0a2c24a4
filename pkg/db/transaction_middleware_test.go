package db

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockFactory(t *testing.T) (*ConnectionFactory, sqlmock.Sqlmock) {
	factory, mock, err := NewSQLMockConnectionFactory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = factory.Close() })
	return factory, mock
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantRollback bool
	}{
		{name: "commits on 200", status: http.StatusOK},
		{name: "commits on 201", status: http.StatusCreated},
		{name: "rolls back on 403", status: http.StatusForbidden, wantRollback: true},
		{name: "rolls back on 500", status: http.StatusInternalServerError, wantRollback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, mock := newSQLMockFactory(t)
			mock.ExpectBegin()
			if tt.wantRollback {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit()
			}

			var sawTx bool
			handler := TransactionMiddleware(factory)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, sawTx = r.Context().Value(transactionKey).(*transaction)
				w.WriteHeader(tt.status)
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

			assert.True(t, sawTx)
			assert.Equal(t, tt.status, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionMiddlewareBeginFailure(t *testing.T) {
	factory, mock := newSQLMockFactory(t)
	mock.ExpectBegin().WillReturnError(assert.AnError)

	called := false
	handler := TransactionMiddleware(factory)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestConnWithoutTransaction(t *testing.T) {
	factory, _ := newSQLMockFactory(t)
	assert.NotNil(t, Conn(httptest.NewRequest(http.MethodGet, "/", nil).Context(), factory))
}
