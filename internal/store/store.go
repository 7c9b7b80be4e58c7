// Package store implements the record store backing every collection in the
// supply chain service: a durable mapping from a collection name to an
// ordered list of flat records, with append and point-update by identity.
package store

import (
	"context"
	"errors"
)

// Collection names owned by the store's backing medium.
const (
	CollectionItems      = "items"
	CollectionInventory  = "inventory"
	CollectionSupplies   = "supplies"
	CollectionCouriers   = "couriers"
	CollectionWarehouses = "warehouses"
	CollectionSuppliers  = "suppliers"
)

// ErrNotFound is returned when a point-update or lookup references a record
// identity that does not exist in the collection.
var ErrNotFound = errors.New("record not found")

// Record is a flat record of named fields, addressed by its "id" field.
type Record map[string]any

// ID returns the record identity, or the empty string when absent.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Clone returns a shallow copy of the record. Field values are primitives
// after a JSON round trip, so a shallow copy is sufficient isolation.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// merge lays the present fields of patch over base and returns the result.
func merge(base, patch Record) Record {
	merged := base.Clone()
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}

// Store is the contract all record store implementations satisfy.
//
// List returns the collection's records in insertion order. Append adds a
// record to the end of the named collection and returns it. UpdateByID finds
// the record whose identity matches the patch's "id" field, lays the patch's
// present fields over it, persists, and returns the merged record; it returns
// ErrNotFound when no such record exists, which callers must treat as a
// distinguishable outcome.
type Store interface {
	List(ctx context.Context, collection string) ([]Record, error)
	Append(ctx context.Context, collection string, rec Record) (Record, error)
	UpdateByID(ctx context.Context, collection string, patch Record) (Record, error)
}
