package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRedactHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Cookie", "session=1")
	req.Header.Set("Content-Type", "application/json")

	redactedHeader := redactHeaders(req.Header)

	assert.Equal(t, redacted, redactedHeader.Get("Authorization"))
	assert.Equal(t, redacted, redactedHeader.Get("Cookie"))
	assert.Equal(t, "application/json", redactedHeader.Get("Content-Type"))
	assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
}

func TestRequestLoggingMiddlewareKeepsResponse(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RequestLoggingMiddleware)
	router.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}).Name("teapot")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}

func TestStatusWriterCountsBytes(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	_, _ = sw.Write([]byte("abc"))
	_, _ = sw.Write([]byte("de"))
	assert.Equal(t, 5, sw.written)
	assert.Equal(t, http.StatusOK, sw.status)
}

func TestLine(t *testing.T) {
	assert.Equal(t, "msg a=1 b=two", line("msg", "a", 1, "b", "two", "dangling"))
}
