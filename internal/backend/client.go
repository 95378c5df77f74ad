// File: internal/backend/client.go
package backend

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"

	"github.com/aegis-c9/aegis-cli/internal/config"
)

// Constants for default optimized TCP/HTTP settings.
const (
	defaultDialTimeout           = 5 * time.Second
	defaultKeepAliveInterval     = 15 * time.Second
	defaultTLSHandshakeTimeout   = 5 * time.Second
	defaultResponseHeaderTimeout = 10 * time.Second

	defaultMaxIdleConns        = 10
	defaultMaxIdleConnsPerHost = 4
	defaultIdleConnTimeout     = 30 * time.Second
)

// NewHTTPClient builds the client used for polling requests. The overall
// request timeout comes from configuration; the stream client builds its own
// timeout-free variant off the same transport.
func NewHTTPClient(cfg config.BackendConfig) *http.Client {
	return &http.Client{
		Timeout:   cfg.RequestTimeout,
		Transport: newTransport(),
	}
}

// NewStreamHTTPClient builds the client used for the long-lived telemetry
// stream. It must not carry a client-level timeout: the response body is
// read for the life of the session and cancellation happens via the request
// context instead.
func NewStreamHTTPClient() *http.Client {
	return &http.Client{Transport: newTransport()}
}

func newTransport() *http.Transport {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   defaultDialTimeout,
			KeepAlive: defaultKeepAliveInterval,
		}).DialContext,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaultResponseHeaderTimeout,
		MaxIdleConns:          defaultMaxIdleConns,
		MaxIdleConnsPerHost:   defaultMaxIdleConnsPerHost,
		IdleConnTimeout:       defaultIdleConnTimeout,
		ForceAttemptHTTP2:     true,
	}
	// Ignore the error: it only fires when the transport was already
	// configured for a conflicting protocol set, which a fresh one never is.
	_ = http2.ConfigureTransport(transport)
	return transport
}
