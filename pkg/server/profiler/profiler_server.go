// Package profiler provides profiling tools for debugging.
package profiler

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/stackrox/newsletter-manager/pkg/environments"
	"github.com/stackrox/newsletter-manager/pkg/server"
)

var _ server.Server = &PprofServer{}
var _ environments.BootService = &PprofServer{}
var _ environments.ConfigModule = &PprofConfig{}

// PprofConfig ...
type PprofConfig struct {
	Enabled     bool   `json:"enabled"`
	BindAddress string `json:"bind_address"`
}

// NewPprofConfig ...
func NewPprofConfig() *PprofConfig {
	return &PprofConfig{BindAddress: "localhost:6060"}
}

// AddFlags ...
func (c *PprofConfig) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.Enabled, "enable-pprof", c.Enabled, "Serve the pprof endpoints from the serve command")
	fs.StringVar(&c.BindAddress, "pprof-server-bindaddress", c.BindAddress, "pprof server bind address")
}

// ReadFiles ...
func (c *PprofConfig) ReadFiles() error {
	return nil
}

// PprofServer serves /debug/pprof when enabled and does nothing otherwise.
type PprofServer struct {
	enabled    bool
	httpServer *http.Server

	mu   sync.Mutex
	addr net.Addr
}

// NewPprofServer ...
func NewPprofServer(config *PprofConfig) *PprofServer {
	router := mux.NewRouter()
	router.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	router.Handle("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
	router.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	router.Handle("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
	router.Handle("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))
	router.Handle("/debug/pprof/{cmd}", http.HandlerFunc(pprof.Index)) // special handling for Gorilla mux

	return &PprofServer{
		enabled: config.Enabled,
		httpServer: &http.Server{
			Addr:              config.BindAddress,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start ...
func (p *PprofServer) Start() {
	if !p.enabled {
		return
	}
	ln, err := p.Listen()
	if err != nil {
		glog.Warningf("Unable to start profiling server: %s", err)
		return
	}
	go p.Serve(ln)
}

// Stop ...
func (p *PprofServer) Stop() {
	if !p.enabled {
		return
	}
	if err := p.httpServer.Shutdown(context.Background()); err != nil {
		glog.Warningf("Unable to stop profiling server: %s", err)
	}
}

// Listen ...
func (p *PprofServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", p.httpServer.Addr)
	if err != nil {
		return nil, errors.Wrapf(err, "pprof server listening on %s", p.httpServer.Addr)
	}
	p.mu.Lock()
	p.addr = ln.Addr()
	p.mu.Unlock()
	return ln, nil
}

// Serve ...
func (p *PprofServer) Serve(ln net.Listener) {
	glog.Infof("Serving pprof at %s", ln.Addr())
	if err := p.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		glog.Errorf("pprof server terminated with errors: %s", err)
	}
}

// Addr is the bound address, nil until the server listens.
func (p *PprofServer) Addr() net.Addr {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.addr
}
