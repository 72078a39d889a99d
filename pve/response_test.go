package pve

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNilResponse(t *testing.T) {
	c := &Client{format: resolveResponseType(TypeArray)}
	res, err := c.decode(nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestDecodePNGB64(t *testing.T) {
	body := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	c := &Client{format: resolveResponseType(TypePNGB64)}

	res, err := c.decode(&APIResponse{StatusCode: http.StatusOK, Body: body})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(body), res)
}

func TestDecodePNGStaysRaw(t *testing.T) {
	body := []byte{0x89, 'P', 'N', 'G'}
	c := &Client{format: resolveResponseType(TypePNG)}

	res, err := c.decode(&APIResponse{StatusCode: http.StatusOK, Body: body})
	require.NoError(t, err)
	assert.Equal(t, string(body), res)
}

func TestDecodeStructured(t *testing.T) {
	payload := []byte(`{"data":{"release":"8.2","version":"8.2.4"}}`)

	for _, alias := range []ResponseType{TypeArray, TypeObject, "definitely-not-a-format"} {
		c := &Client{format: resolveResponseType(alias)}
		res, err := c.decode(&APIResponse{StatusCode: http.StatusOK, Body: payload})
		require.NoError(t, err, "alias %q", alias)

		m, ok := res.(map[string]any)
		require.True(t, ok, "alias %q decoded to %T", alias, res)
		data, ok := m["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "8.2.4", data["version"])
	}
}

func TestDecodeStructuredRejectsBadJSON(t *testing.T) {
	c := &Client{format: resolveResponseType(TypeArray)}
	_, err := c.decode(&APIResponse{StatusCode: http.StatusOK, Body: []byte("<html>")})
	require.Error(t, err)
}

func TestDecodeTextFormatsPassThrough(t *testing.T) {
	for _, alias := range []ResponseType{TypeJSON, TypeHTML, TypeExtJS, TypeText} {
		c := &Client{format: resolveResponseType(alias)}
		res, err := c.decode(&APIResponse{StatusCode: http.StatusOK, Body: []byte("<pre>hello</pre>")})
		require.NoError(t, err, "alias %q", alias)
		assert.Equal(t, "<pre>hello</pre>", res, "alias %q", alias)
	}
}

func TestPNGB64EndToEnd(t *testing.T) {
	img := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api2/png/nodes/pve1/rrd", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(img)
	}), WithResponseType(TypePNGB64))

	res, err := c.Get(context.Background(), "/nodes/pve1/rrd", Params{"ds": "cpu"})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(img), res)
}
