// Package store persists the four built dictionary artifacts (reading
// trie, surface trie, token array, connection matrix + POS table) as
// named blobs, decoupled from any particular backend.
package store

import (
	"errors"
	"io"
)

// ErrNotFound is returned by Open when name has no blob.
var ErrNotFound = errors.New("store: blob not found")

// BlobStore persists and retrieves named byte blobs, mirroring the role
// stalefish's Storage interface plays for documents/tokens but scoped to
// whole-file dictionary artifacts rather than relational rows.
type BlobStore interface {
	// Open returns a reader for the blob named name, or ErrNotFound.
	Open(name string) (io.ReadCloser, error)
	// Create returns a writer that (over)writes the blob named name.
	// Callers must Close it to flush and finalize the write.
	Create(name string) (io.WriteCloser, error)
}
