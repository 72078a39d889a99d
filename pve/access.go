package pve

import "context"

// Access returns the access control index (/access): domains, users, groups,
// roles, ACLs.
func (c *Client) Access(ctx context.Context) (any, error) {
	return c.Get(ctx, "/access", nil)
}
