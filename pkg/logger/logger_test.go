package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/openshift-online/ocm-sdk-go/authentication"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEventRoundTrip(t *testing.T) {
	event := NewLogEvent("create-newsletter", "create a newsletter")
	assert.Equal(t, "create-newsletter$$create a newsletter", event.ToString())
	assert.Equal(t, event, NewLogEventFromString(event.ToString()))

	event = NewLogEvent("list-logs")
	assert.Equal(t, "list-logs", event.ToString())
	assert.Equal(t, event, NewLogEventFromString("list-logs"))
}

func TestPrepareLogPrefix(t *testing.T) {
	token := &jwt.Token{Claims: jwt.MapClaims{"username": "alice"}}
	ctx := authentication.ContextWithToken(context.Background(), token)
	ctx = context.WithValue(ctx, OpIDKey, "op-1")
	ctx = context.WithValue(ctx, ActionResultKey, ActionSuccess)

	l := NewUHCLogger(ctx).(*logger)
	assert.Equal(t, "[result=success][user=alice][opid=op-1] hello 42", l.prepareLogPrefix("hello %d", 42))
}

func TestPrepareLogPrefixWithoutClaims(t *testing.T) {
	l := NewUHCLogger(context.Background()).(*logger)
	assert.Equal(t, " plain", l.prepareLogPrefix("plain"))
}

func TestOperationIDMiddleware(t *testing.T) {
	var seen string
	handler := OperationIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetOperationID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(OpIDHeader))
}

func TestWithOpIDKeepsExisting(t *testing.T) {
	ctx := context.WithValue(context.Background(), OpIDKey, "keep")
	assert.Equal(t, "keep", GetOperationID(WithOpID(ctx)))
}
