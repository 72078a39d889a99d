package pve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPathAccessors(t *testing.T) {
	tests := []struct {
		name string
		call func(context.Context, *Client) (any, error)
		path string
	}{
		{"access", func(ctx context.Context, c *Client) (any, error) { return c.Access(ctx) }, "/api2/json/access"},
		{"cluster", func(ctx context.Context, c *Client) (any, error) { return c.Cluster(ctx) }, "/api2/json/cluster"},
		{"nodes", func(ctx context.Context, c *Client) (any, error) { return c.Nodes(ctx) }, "/api2/json/nodes"},
		{"pools", func(ctx context.Context, c *Client) (any, error) { return c.Pools(ctx) }, "/api2/json/pools"},
		{"version", func(ctx context.Context, c *Client) (any, error) { return c.Version(ctx) }, "/api2/json/version"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec capture
			c := newTestClient(t, rec.handler())

			_, err := tc.call(context.Background(), c)
			require.NoError(t, err)

			require.Len(t, rec.requests, 1)
			assert.Equal(t, tc.path, rec.requests[0].path)
			assert.Empty(t, rec.requests[0].query)
		})
	}
}
