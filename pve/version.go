package pve

import "context"

// Version returns the API version details (/version).
func (c *Client) Version(ctx context.Context) (any, error) {
	return c.Get(ctx, "/version", nil)
}
