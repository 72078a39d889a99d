package pve

import "context"

// Nodes returns the cluster node index (/nodes).
func (c *Client) Nodes(ctx context.Context) (any, error) {
	return c.Get(ctx, "/nodes", nil)
}
