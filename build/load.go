package build

import (
	"fmt"
	"io"

	"github.com/kotaroooo0/kanakanji/dict"
	"github.com/kotaroooo0/kanakanji/louds"
	"github.com/kotaroooo0/kanakanji/store"
)

// Blob names under which Save writes and Load reads each Dictionaries
// component in a store.BlobStore.
const (
	BlobReadingTrie = "reading-trie"
	BlobSurfaceTrie = "surface-trie"
	BlobTokens      = "tokens"
	BlobPosTable    = "pos-table"
	BlobConnection  = "connection-matrix"
)

// Load reconstitutes a Dictionaries bundle from a BlobStore, the
// read-back counterpart to Build: spec §2 loads the four dictionaries
// once per process from persisted artifacts rather than rebuilding them
// from source rows on every startup.
func Load(s store.BlobStore) (*Dictionaries, error) {
	readingTrie, err := readBlob(s, BlobReadingTrie, louds.ReadTermIDLouds)
	if err != nil {
		return nil, fmt.Errorf("build: load reading trie: %w", err)
	}
	surfaceTrie, err := readBlob(s, BlobSurfaceTrie, louds.ReadLouds)
	if err != nil {
		return nil, fmt.Errorf("build: load surface trie: %w", err)
	}
	tokens, err := readBlob(s, BlobTokens, dict.ReadTokenArray)
	if err != nil {
		return nil, fmt.Errorf("build: load tokens: %w", err)
	}
	posTable, err := readBlob(s, BlobPosTable, dict.ReadPosTable)
	if err != nil {
		return nil, fmt.Errorf("build: load pos table: %w", err)
	}
	connection, err := readBlob(s, BlobConnection, dict.ReadConnectionMatrix)
	if err != nil {
		return nil, fmt.Errorf("build: load connection matrix: %w", err)
	}

	return &Dictionaries{
		ReadingTrie: readingTrie,
		SurfaceTrie: surfaceTrie,
		Tokens:      tokens,
		PosTable:    posTable,
		Connection:  connection,
	}, nil
}

// Save persists a Dictionaries bundle to a BlobStore in the layout Load
// expects.
func Save(s store.BlobStore, d *Dictionaries) error {
	if err := writeBlob(s, BlobReadingTrie, d.ReadingTrie); err != nil {
		return fmt.Errorf("build: save reading trie: %w", err)
	}
	if err := writeBlob(s, BlobSurfaceTrie, d.SurfaceTrie); err != nil {
		return fmt.Errorf("build: save surface trie: %w", err)
	}
	if err := writeBlob(s, BlobTokens, d.Tokens); err != nil {
		return fmt.Errorf("build: save tokens: %w", err)
	}
	if err := writeBlob(s, BlobPosTable, d.PosTable); err != nil {
		return fmt.Errorf("build: save pos table: %w", err)
	}
	if err := writeBlob(s, BlobConnection, d.Connection); err != nil {
		return fmt.Errorf("build: save connection matrix: %w", err)
	}
	return nil
}

func readBlob[T any](s store.BlobStore, name string, decode func(io.Reader) (T, error)) (T, error) {
	r, err := s.Open(name)
	if err != nil {
		var zero T
		return zero, err
	}
	defer r.Close()
	return decode(r)
}

func writeBlob(s store.BlobStore, name string, src io.WriterTo) error {
	w, err := s.Create(name)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
