package pve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrUnsupportedMethod is returned when a request is dispatched with an HTTP
// verb outside GET/POST/PUT/DELETE.
var ErrUnsupportedMethod = errors.New("unsupported HTTP method")

// Params holds the request parameters for a single call. For GET they are
// encoded into the query string; for POST/PUT/DELETE they become the request
// body.
type Params map[string]any

func (p Params) values() url.Values {
	v := url.Values{}
	for key, val := range p {
		v.Set(key, fmt.Sprint(val))
	}
	return v
}

type callOptions struct {
	jsonBody bool
}

// CallOption adjusts a single request.
type CallOption func(*callOptions)

// WithJSONBody sends the params of a POST/PUT/DELETE as a JSON document
// instead of the default form encoding.
func WithJSONBody() CallOption {
	return func(o *callOptions) { o.jsonBody = true }
}

// normalizePath guarantees a leading slash; already-rooted paths pass through
// unchanged.
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// BaseURL returns the API root for the active wire format, e.g.
// "https://pve.local:8006/api2/json".
func (c *Client) BaseURL() string {
	return fmt.Sprintf("https://%s:%d/api2/%s", c.hostname, c.port, c.format.wire)
}

// APIResponse is the raw transport result before decoding. Non-2xx statuses
// are preserved here, never turned into errors: server-side failures reach the
// caller as decoded bodies.
type APIResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// request builds and issues one HTTP request. GET params go into the query
// string; the other verbs carry params in the body, form-encoded unless
// WithJSONBody was given.
func (c *Client) request(ctx context.Context, method, path string, params Params, opts ...CallOption) (*APIResponse, error) {
	var co callOptions
	for _, o := range opts {
		o(&co)
	}
	if params == nil {
		params = Params{}
	}

	reqURL := c.BaseURL() + normalizePath(path)

	var body io.Reader
	var contentType string
	switch method {
	case http.MethodGet:
		if len(params) > 0 {
			reqURL += "?" + params.values().Encode()
		}
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		if co.jsonBody {
			b, err := json.Marshal(params)
			if err != nil {
				return nil, fmt.Errorf("encode request body: %w", err)
			}
			body = bytes.NewReader(b)
			contentType = "application/json"
		} else {
			body = strings.NewReader(params.values().Encode())
			contentType = "application/x-www-form-urlencoded"
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("PVEAPIToken=%s=%s", c.tokenID, c.tokenSecret))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestsTotal.WithLabelValues(method).Inc()
	resp, err := c.http.Do(req)
	if err != nil {
		requestFailures.WithLabelValues(method).Inc()
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		requestFailures.WithLabelValues(method).Inc()
		return nil, err
	}
	return &APIResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// Get issues a GET against path with params in the query string and decodes
// the result per the active response type.
func (c *Client) Get(ctx context.Context, path string, params Params) (any, error) {
	resp, err := c.request(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	return c.decode(resp)
}

// Create issues a POST against path.
func (c *Client) Create(ctx context.Context, path string, params Params, opts ...CallOption) (any, error) {
	resp, err := c.request(ctx, http.MethodPost, path, params, opts...)
	if err != nil {
		return nil, err
	}
	return c.decode(resp)
}

// Set issues a PUT against path.
func (c *Client) Set(ctx context.Context, path string, params Params, opts ...CallOption) (any, error) {
	resp, err := c.request(ctx, http.MethodPut, path, params, opts...)
	if err != nil {
		return nil, err
	}
	return c.decode(resp)
}

// Delete issues a DELETE against path. Unlike some upstream PVE clients that
// silently forced form encoding on delete, WithJSONBody is honored here the
// same as for Create and Set.
func (c *Client) Delete(ctx context.Context, path string, params Params, opts ...CallOption) (any, error) {
	resp, err := c.request(ctx, http.MethodDelete, path, params, opts...)
	if err != nil {
		return nil, err
	}
	return c.decode(resp)
}
