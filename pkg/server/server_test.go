package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackrox/newsletter-manager/pkg/metrics"
)

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealthCheckMaintenanceToggle(t *testing.T) {
	s := NewHealthCheckServer(NewHealthCheckConfig(), NewServerConfig(), nil)
	h := s.Handler()

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthcheck").Code)

	serve(h, http.MethodPost, "/healthcheck/down")
	down := serve(h, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusServiceUnavailable, down.Code)
	assert.Contains(t, down.Body.String(), maintenanceCheck)

	serve(h, http.MethodPost, "/healthcheck/up")
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthcheck").Code)
}

func TestHealthCheckServersAreIndependent(t *testing.T) {
	first := NewHealthCheckServer(NewHealthCheckConfig(), NewServerConfig(), nil)
	second := NewHealthCheckServer(NewHealthCheckConfig(), NewServerConfig(), nil)

	serve(first.Handler(), http.MethodPost, "/healthcheck/down")
	assert.Equal(t, http.StatusOK, serve(second.Handler(), http.MethodGet, "/healthcheck").Code)
}

func TestMetricsServerExposesRegistry(t *testing.T) {
	metrics.IncreaseNewsletterLogsWritten(true)
	s := NewMetricsServer(NewMetricsConfig(), NewServerConfig())

	rec := serve(s.Handler(), http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "newsletter_logs_written_total")
	assert.Equal(t, http.StatusNotFound, serve(s.Handler(), http.MethodGet, "/other").Code)
}

func TestListenerStartStop(t *testing.T) {
	cfg := NewMetricsConfig()
	cfg.BindAddress = "127.0.0.1:0"
	s := NewMetricsServer(cfg, NewServerConfig())

	ln, err := s.Listen()
	require.NoError(t, err)
	done := make(chan struct{})
	go func() {
		s.Serve(ln)
		close(done)
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	s.Stop()
	<-done
}

func TestListenerConfigFlags(t *testing.T) {
	assert.Equal(t, "localhost:8080", NewMetricsConfig().BindAddress)
	assert.Equal(t, "localhost:8083", NewHealthCheckConfig().BindAddress)
}

func TestRemoveTrailingSlash(t *testing.T) {
	var seen string
	h := removeTrailingSlash(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { seen = r.URL.Path }))
	serve(h, http.MethodGet, "/api/newsletters_mgmt/v1/")
	assert.Equal(t, "/api/newsletters_mgmt/v1", seen)
	serve(h, http.MethodGet, "/")
	assert.Equal(t, "/", seen)
}
