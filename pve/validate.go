package pve

import "fmt"

// storageKinds is the set of storage backend types accepted by the Storages
// filter.
var storageKinds = map[string]struct{}{
	"lvm":         {},
	"nfs":         {},
	"dir":         {},
	"zfs":         {},
	"rbd":         {},
	"iscsi":       {},
	"sheepdog":    {},
	"glusterfs":   {},
	"iscsidirect": {},
}

func validStorageKind(kind string) bool {
	_, ok := storageKinds[kind]
	return ok
}

// validatePayload rejects nil or empty creation payloads before any request
// is issued.
func validatePayload(data Params, what string) error {
	if len(data) == 0 {
		return fmt.Errorf("%s: payload is required", what)
	}
	return nil
}
