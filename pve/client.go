// Package pve is a thin client for the Proxmox Virtual Environment REST API.
//
// The client maps method calls onto authenticated HTTP requests against
// https://{host}:{port}/api2/{format}/... using API-token authentication, and
// decodes each response according to the configured response type. It keeps no
// state between calls, performs no retries, and never translates server-side
// error statuses: 4xx/5xx bodies are decoded and handed back to the caller.
package pve

import (
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultPort is the port the Proxmox VE management API listens on.
const DefaultPort = 8006

// Client issues authenticated requests against a single Proxmox VE host.
//
// Hostname, port and credentials are fixed for the client's lifetime; the
// response type may be changed at runtime and affects all subsequent calls.
type Client struct {
	tokenID     string
	tokenSecret string
	hostname    string
	port        int

	format responseFormat

	http *http.Client
}

// New constructs a Client for the given host and API token. The token id
// carries the full Proxmox form, e.g. "user@pve!mytoken"; the secret is the
// server-issued UUID. Credentials are not validated locally: a bad token is
// only rejected by the server at call time.
func New(tokenID, tokenSecret, hostname string, opts ...Option) (*Client, error) {
	c := &Client{
		tokenID:     tokenID,
		tokenSecret: tokenSecret,
		hostname:    hostname,
		port:        DefaultPort,
		format:      resolveResponseType(TypeArray),
		http:        &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if os.Getenv("PVE_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// HTTPClient returns the transport used for all requests.
func (c *Client) HTTPClient() *http.Client { return c.http }

// SetHTTPClient replaces the transport. A nil client is ignored.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.http = hc
	}
}

// ResponseType reports the presentation alias currently in effect.
func (c *Client) ResponseType() ResponseType { return c.format.alias }

// SetResponseType switches the response type for all subsequent calls.
// Unrecognized types silently fall back to TypeArray.
func (c *Client) SetResponseType(rt ResponseType) {
	c.format = resolveResponseType(rt)
}

// --------------------------------------------------------------------
// debugTransport – optional HTTP round-trip logger
// --------------------------------------------------------------------

type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqDump, err := httputil.DumpRequestOut(req, true)
	if err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	// DumpResponse replaces resp.Body with a fresh reader, so the body stays
	// readable by the decoder.
	respDump, err := httputil.DumpResponse(resp, true)
	if err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}
