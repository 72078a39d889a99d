package pve

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"crypto/tls"
	"fmt"
	"net/http"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithPort overrides the default API port (8006).
func WithPort(port int) Option {
	return func(c *Client) error {
		if port <= 0 || port > 65535 {
			return fmt.Errorf("invalid port %d", port)
		}
		c.port = port
		return nil
	}
}

// WithResponseType sets the initial response type. Unrecognized types fall
// back to TypeArray, same as SetResponseType.
func WithResponseType(rt ResponseType) Option {
	return func(c *Client) error {
		c.format = resolveResponseType(rt)
		return nil
	}
}

// WithHTTPClient injects a custom *http.Client. Useful for setting transport
// timeouts, tracing, custom TLS settings, etc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithInsecureTLS disables certificate verification. Common for PVE hosts
// running with the stock self-signed certificate.
func WithInsecureTLS() Option {
	return func(c *Client) error {
		transport, ok := c.http.Transport.(*http.Transport)
		if !ok || transport == nil {
			transport = http.DefaultTransport.(*http.Transport).Clone()
		}
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		c.http.Transport = transport
		return nil
	}
}

// WithDebugLogging wraps the client's transport such that every
// request/response is dumped at debug level when `enabled` is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}
