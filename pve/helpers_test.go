package pve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// capturedRequest records what the fake backend saw for one call.
type capturedRequest struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

// capture collects requests in arrival order.
type capture struct {
	requests []capturedRequest
}

func (c *capture) handler() http.Handler {
	return c.handlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":null}`))
	})
}

func (c *capture) handlerFunc(respond http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c.requests = append(c.requests, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			header: r.Header.Clone(),
			body:   body,
		})
		respond(w, r)
	})
}

const testTokenID = "root@pam!ci"

// PVE token secrets are server-issued UUIDs; a fresh one per test run keeps
// assertions honest.
var testTokenSecret = uuid.NewString()

// newTestClient points a Client with default credentials at a TLS fake
// backend.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	ts := httptest.NewTLSServer(handler)
	t.Cleanup(ts.Close)

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	opts = append([]Option{WithPort(port), WithHTTPClient(ts.Client())}, opts...)
	c, err := New(testTokenID, testTokenSecret, u.Hostname(), opts...)
	require.NoError(t, err)
	return c
}
