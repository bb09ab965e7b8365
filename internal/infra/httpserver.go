package infra

import (
	"context"
	"net/http"
	"time"
)

// A produce call renders a whole storyboard before replying, so the write
// timeout is sized in minutes while reads stay tight.
const (
	defaultReadTimeout  = 60 * time.Second
	defaultWriteTimeout = 10 * time.Minute
	defaultIdleTimeout  = 2 * time.Minute
	readHeaderTimeout   = 5 * time.Second
)

// HTTPServer runs the studio API with timeouts sized for synchronous
// production runs.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer builds the server. Unset timeouts take the studio defaults
// above rather than http.Server's unlimited zero values.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	read, write, idle := cfg.HTTPReadTimeout, cfg.HTTPWriteTimeout, cfg.HTTPIdleTimeout
	if read <= 0 {
		read = defaultReadTimeout
	}
	if write <= 0 {
		write = defaultWriteTimeout
	}
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &HTTPServer{srv: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       read,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      write,
		IdleTimeout:       idle,
	}}
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *HTTPServer) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
