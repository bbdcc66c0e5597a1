package httpserver

import (
	"net/http"
	"time"

	"egid/internal/platform/config"
)

// readHeaderTimeout is tighter than the body timeouts; decode requests have
// tiny headers.
const readHeaderTimeout = 5 * time.Second

// New builds the HTTP server from config. RequestTimeout bounds reading the
// body and writing the response.
func New(cfg config.Server, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: min(readHeaderTimeout, cfg.RequestTimeout),
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       6 * cfg.RequestTimeout,
	}
}
