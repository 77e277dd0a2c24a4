// Package logging logs every API request and its response status.
package logging

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/stackrox/newsletter-manager/pkg/logger"
)

const redacted = "REDACTED"

// Header values never written to the log, keyed by canonical name.
var secretHeaders = map[string]bool{
	"Authorization":       true,
	"Proxy-Authorization": true,
	"Cookie":              true,
}

// RequestLoggingMiddleware logs the request on arrival and the status, size and duration of the response.
// Server errors are logged as warnings, everything else at verbosity 3.
func RequestLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil && current.GetName() != "" {
			route = current.GetName()
		}
		r = r.WithContext(context.WithValue(r.Context(), logger.RemoteAddrKey, r.RemoteAddr))
		log := logger.NewUHCLogger(r.Context())

		log.V(3).Info(line("Request received", "route", route, "method", r.Method, "path", r.URL.Path, "header", redactHeaders(r.Header)))

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)

		msg := line("Response sent", "route", route, "method", r.Method, "status", sw.status, "bytes", sw.written, "elapsed", time.Since(start))
		if sw.status >= http.StatusInternalServerError {
			log.Warning(msg)
			return
		}
		log.V(3).Info(msg)
	})
}

func redactHeaders(header http.Header) http.Header {
	out := make(http.Header, len(header))
	for name, values := range header {
		if secretHeaders[http.CanonicalHeaderKey(name)] {
			out[name] = []string{redacted}
			continue
		}
		out[name] = values
	}
	return out
}

func line(msg string, keysAndValues ...interface{}) string {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}

type statusWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *statusWriter) Write(body []byte) (int, error) {
	n, err := w.ResponseWriter.Write(body)
	w.written += n
	return n, err
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush keeps streaming responses working behind the middleware.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
