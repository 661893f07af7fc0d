package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server. WriteTimeout stays unset: the TED proxy routes
// wait on the remote call, which has no deadline of its own.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
