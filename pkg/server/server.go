// Package server contains the HTTP servers started by the serve command.
package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	readHeaderTimeout = 10 * time.Second
	exitFlushTimeout  = 5 * time.Second
)

// Server ...
type Server interface {
	Start()
	Stop()
	Listen() (net.Listener, error)
	Serve(net.Listener)
}

var _ Server = &listener{}

// listener runs one http.Server, with TLS when enabled, and is embedded by every server of the package.
type listener struct {
	name       string
	httpServer *http.Server
	https      bool
	certFile   string
	keyFile    string
}

func newListener(name, bindAddress string, handler http.Handler, https bool, serverConfig *ServerConfig) *listener {
	return &listener{
		name: name,
		httpServer: &http.Server{
			Addr:              bindAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		https:    https,
		certFile: serverConfig.HTTPSCertFile,
		keyFile:  serverConfig.HTTPSKeyFile,
	}
}

// Handler exposes the fully wrapped handler, mostly for tests.
func (l *listener) Handler() http.Handler {
	return l.httpServer.Handler
}

// Listen only binds the address so callers can rely on it before serving.
func (l *listener) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", l.httpServer.Addr)
	if err != nil {
		return nil, errors.Wrapf(err, "%s server listening on %s", l.name, l.httpServer.Addr)
	}
	return ln, nil
}

// Serve blocks until the server is shut down and exits the process on any other error.
func (l *listener) Serve(ln net.Listener) {
	var err error
	if l.https {
		if l.certFile == "" || l.keyFile == "" {
			exitOnError(errors.New("unspecified required --https-cert-file, --https-key-file"), "can't start https "+l.name+" server")
		}
		glog.Infof("Serving %s with TLS at %s", l.name, ln.Addr())
		err = l.httpServer.ServeTLS(ln, l.certFile, l.keyFile)
	} else {
		glog.Infof("Serving %s without TLS at %s", l.name, ln.Addr())
		err = l.httpServer.Serve(ln)
	}
	exitOnError(err, l.name+" server terminated with errors")
	glog.Infof("%s server terminated", l.name)
}

// Start binds in the calling goroutine and serves in a new one.
func (l *listener) Start() {
	ln, err := l.Listen()
	if err != nil {
		glog.Fatalf("Unable to start %s server: %s", l.name, err)
	}
	go l.Serve(ln)
}

// Stop ...
func (l *listener) Stop() {
	if err := l.httpServer.Shutdown(context.Background()); err != nil {
		glog.Warningf("Unable to stop %s server: %s", l.name, err)
	}
}

func removeTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 1 {
			r.URL.Path = strings.TrimSuffix(r.URL.Path, "/")
		}
		next.ServeHTTP(w, r)
	})
}

func exitOnError(err error, msg string) {
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		glog.Errorf("%s: %s", msg, err)
		glog.Flush()
		time.Sleep(exitFlushTimeout)
		os.Exit(1)
	}
}
