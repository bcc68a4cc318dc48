// Package auth applies credentials to requests sent to private dataset mirrors.
package auth

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Authenticator applies credentials to an HTTP request.
type Authenticator interface {
	Apply(req *http.Request) error
	Type() Type
}

// BasicAuth represents HTTP Basic Authentication credentials.
type BasicAuth struct {
	Username string
	Password string
}

// HeaderAuth sends fixed headers, e.g. an API key.
type HeaderAuth struct {
	Headers map[string]string
}

// BearerAuth represents Bearer token authentication.
type BearerAuth struct {
	Token string
}

// Type represents the type of authentication.
type Type string

// Authentication types.
const (
	BasicAuthType  Type = "basic"
	HeaderAuthType Type = "header"
	BearerAuthType Type = "bearer"
)

// Apply adds Basic Authentication headers to the HTTP request.
func (b BasicAuth) Apply(req *http.Request) error {
	req.SetBasicAuth(b.Username, b.Password)
	return nil
}

// Type returns BasicAuthType.
func (b BasicAuth) Type() Type { return BasicAuthType }

// Apply adds the configured headers to the HTTP request.
func (h HeaderAuth) Apply(req *http.Request) error {
	for k, v := range h.Headers {
		req.Header.Set(k, v)
	}
	return nil
}

// Type returns HeaderAuthType.
func (h HeaderAuth) Type() Type { return HeaderAuthType }

// Apply adds a Bearer token to the Authorization header of the HTTP request.
func (b BearerAuth) Apply(req *http.Request) error {
	if b.Token == "" {
		return fmt.Errorf("empty bearer token for %s", req.URL.Host)
	}
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

// Type returns BearerAuthType.
func (b BearerAuth) Type() Type { return BearerAuthType }

// Hosts maps mirror hosts to their credentials. Keys are either host:port
// or a bare host name matching any port.
type Hosts map[string]Authenticator

// For returns the authenticator for u, or nil when the host has none.
func (h Hosts) For(u *url.URL) Authenticator {
	if len(h) == 0 || u == nil {
		return nil
	}
	if a, ok := h[strings.ToLower(u.Host)]; ok {
		return a
	}
	return h[strings.ToLower(u.Hostname())]
}

// Apply authenticates req with the credentials of its host, if any.
func (h Hosts) Apply(req *http.Request) error {
	a := h.For(req.URL)
	if a == nil {
		return nil
	}
	if err := a.Apply(req); err != nil {
		return fmt.Errorf("%s auth for %s: %w", a.Type(), req.URL.Host, err)
	}
	return nil
}
