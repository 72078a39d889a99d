package pve

import "context"

// Pool operations - all methods operate directly on Client

// Pools returns the resource pool index (/pools).
func (c *Client) Pools(ctx context.Context) (any, error) {
	return c.Get(ctx, "/pools", nil)
}

// CreatePool creates a resource pool. The payload must at least carry
// "poolid"; an empty payload fails before any request is issued.
func (c *Client) CreatePool(ctx context.Context, data Params, opts ...CallOption) (any, error) {
	if err := validatePayload(data, "create pool"); err != nil {
		return nil, err
	}
	return c.Create(ctx, "/pools", data, opts...)
}
