package logger

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// OperationIDKey ...
type OperationIDKey string

// OpIDKey context key for the operation id
const OpIDKey OperationIDKey = "opID"

// OpIDHeader response header carrying the operation id
const OpIDHeader = "X-Operation-ID"

// TxIDKey context key for the transaction id
const TxIDKey OperationIDKey = "txID"

// OperationIDMiddleware Middleware wraps the given HTTP handler so that the details of the request are sent to the log.
func OperationIDMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithOpID(r.Context())

		opID, ok := ctx.Value(OpIDKey).(string)
		if ok && len(opID) > 0 {
			w.Header().Set(OpIDHeader, opID)
		}

		handler.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithOpID returns ctx with a fresh operation ID unless it already carries one.
func WithOpID(ctx context.Context) context.Context {
	if ctx.Value(OpIDKey) != nil {
		return ctx
	}
	return context.WithValue(ctx, OpIDKey, uuid.NewString())
}

// GetOperationID get operationID of the context
func GetOperationID(ctx context.Context) string {
	if opID, ok := ctx.Value(OpIDKey).(string); ok {
		return opID
	}
	return ""
}
