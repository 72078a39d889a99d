package pve

import "context"

// Storage operations - all methods operate directly on Client

// Storages returns the datastore index (/storage), optionally filtered by
// backend kind (lvm, nfs, dir, zfs, rbd, iscsi, sheepdog, glusterfs,
// iscsidirect). An empty kind lists everything. An unrecognized kind is not
// an error: no request is issued and the result is nil.
func (c *Client) Storages(ctx context.Context, kind string) (any, error) {
	if kind == "" {
		return c.Get(ctx, "/storage", nil)
	}
	if !validStorageKind(kind) {
		return nil, nil
	}
	return c.Get(ctx, "/storage", Params{"type": kind})
}

// CreateStorage registers a datastore. The payload must at least carry
// "storage" and "type"; an empty payload fails before any request is issued.
func (c *Client) CreateStorage(ctx context.Context, data Params, opts ...CallOption) (any, error) {
	if err := validatePayload(data, "create storage"); err != nil {
		return nil, err
	}
	return c.Create(ctx, "/storage", data, opts...)
}
