// Package store defines the document store contract for the Qik Office
// backend and its concrete adapters (MongoDB and an embedded in-memory
// engine). Collection names are runtime keys, not types; every adapter
// speaks the same insert/find/update-field vocabulary.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when an identifier matches no stored record.
	ErrNotFound = errors.New("record not found")
	// ErrBadID is returned when an identifier is not syntactically valid.
	ErrBadID = errors.New("invalid record id")
	// ErrUnavailable is returned when no backing store connection exists.
	ErrUnavailable = errors.New("store not available")
)

// Filter restricts a Find to records whose fields equal the given values.
// A []string value means set membership ($in); any other value is matched
// exactly. An empty or nil filter matches every record in the collection.
type Filter map[string]any

// Record is one stored document as returned by Find, keyed by field name
// with the store's internal "_id" still present. Use ToWire before handing
// a Record to a caller.
type Record map[string]any

// Store is the generic document-access contract. Both the Mongo adapter and
// the embedded memory engine implement it.
type Store interface {
	// Insert serializes doc into the named collection, assigns a new unique
	// identifier and returns it in opaque string form.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Find returns every record in the named collection matching the filter,
	// in store-native insertion order.
	Find(ctx context.Context, collection string, filter Filter) ([]Record, error)

	// UpdateField atomically replaces a single field of the record with the
	// given id. Returns ErrBadID for a malformed id and ErrNotFound when no
	// record matches.
	UpdateField(ctx context.Context, collection, id, field string, value any) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	Close(ctx context.Context) error
}
