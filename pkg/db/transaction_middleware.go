package db

import (
	"net/http"

	"github.com/stackrox/newsletter-manager/pkg/errors"
	"github.com/stackrox/newsletter-manager/pkg/logger"
	"github.com/stackrox/newsletter-manager/pkg/shared"
)

// TransactionMiddleware wraps each request in a transaction. Responses with a status >= 400 are rolled back.
func TransactionMiddleware(connection *ConnectionFactory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := NewContext(r.Context(), connection)
			if err != nil {
				shared.HandleError(r, w, errors.NewWithCause(errors.ErrorGeneral, err, "Unable to start transaction"))
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(ctx))

			if sw.status >= http.StatusBadRequest {
				MarkForRollback(ctx, nil)
			}
			if err := Resolve(ctx); err != nil {
				logger.NewUHCLogger(ctx).Errorf("Could not resolve transaction: %v", err)
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
