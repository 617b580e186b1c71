package alpaca

import (
	"net/http"
	"time"
)

// baseTransportConfig returns the HTTP transport used by the Alpaca market data client.
func baseTransportConfig() *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: 2 * time.Minute,
		TLSHandshakeTimeout:   10 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConnsPerHost:   2,
	}
}

// newHTTPClient creates an HTTP client for Alpaca requests. A non-positive timeout disables the overall deadline.
func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout < 0 {
		timeout = 0
	}
	return &http.Client{
		Transport: baseTransportConfig(),
		Timeout:   timeout,
	}
}
