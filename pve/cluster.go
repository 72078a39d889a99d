package pve

import "context"

// Cluster returns the cluster index (/cluster).
func (c *Client) Cluster(ctx context.Context) (any, error) {
	return c.Get(ctx, "/cluster", nil)
}
