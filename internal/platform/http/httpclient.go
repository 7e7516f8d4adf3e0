// Package http holds HTTP plumbing shared by the server and the portal client.
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent identifies the portal client. The server stores it with each issued token.
const DefaultUserAgent = "student-portal-cli"

// NewHTTPClient builds a client with explicit dial, TLS and overall timeouts
// that tags every request with DefaultUserAgent.
// http.DefaultClient has no timeout and must not be used for API calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return NewHTTPClientWithAgent(timeout, DefaultUserAgent)
}

// NewHTTPClientWithAgent is NewHTTPClient with a custom User-Agent.
// An empty agent leaves Go's default in place.
func NewHTTPClientWithAgent(timeout time.Duration, agent string) *http.Client {
	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	var rt http.RoundTripper = base
	if agent != "" {
		rt = &userAgentTransport{next: base, agent: agent}
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}

type userAgentTransport struct {
	next  http.RoundTripper
	agent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(r)
}
