// Package store abstracts the hosted realtime database backing the
// marketplace. The store is the single source of truth: subscribers receive
// the full collection on every change and reconcile their local state from
// the push, never from the outcome of their own writes.
package store

import (
	"context"

	"heavylingam-backend/internal/domain"
)

// Snapshot is the full listing collection keyed by store-assigned id.
type Snapshot map[string]domain.Listing

// SnapshotHandler receives either a snapshot or a terminal error. After an
// error delivery the subscription is dead; no automatic retry is made.
type SnapshotHandler func(Snapshot, error)

// Store is the backing realtime database, reduced to the operations this
// system uses. Overwrite is a full-record replace, not a field-level patch:
// any field absent from the record is lost server-side.
type Store interface {
	// Subscribe delivers the current snapshot immediately and again on
	// every change until cancel is called or ctx is done.
	Subscribe(ctx context.Context, path string, h SnapshotHandler) (cancel func(), err error)

	// Append stores the record under a freshly generated identifier and
	// returns it.
	Append(ctx context.Context, path string, l domain.Listing) (string, error)

	Overwrite(ctx context.Context, path, id string, l domain.Listing) error

	// Remove deletes the record at id. Removing an absent id is a no-op.
	Remove(ctx context.Context, path, id string) error
}
