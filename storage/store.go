// Package storage provides the document-store abstraction backing the
// marketplace repositories.
package storage

import "errors"

// ErrNotFound is returned when a document does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Store is a minimal document database: JSON documents grouped into named
// collections and keyed by opaque string IDs.
type Store interface {
	// Add inserts doc under a freshly generated ID and returns it.
	Add(collection string, doc any) (string, error)
	// Put inserts or replaces the document with the given ID.
	Put(collection, id string, doc any) error
	// Get unmarshals the document with the given ID into out.
	// Returns ErrNotFound when absent.
	Get(collection, id string, out any) error
	// Delete removes the document with the given ID.
	// Returns ErrNotFound when absent.
	Delete(collection, id string) error
	// ForEach walks every document of a collection in key order, handing
	// the callback the raw JSON. Returning an error stops the walk.
	ForEach(collection string, fn func(id string, data []byte) error) error
}
