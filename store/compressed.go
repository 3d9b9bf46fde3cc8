package store

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Compressed wraps a BlobStore, zstd-compressing blobs on write and
// transparently decompressing them on read, the compressed-layer
// counterpart to stalefish's StorageRdbCompressedImpl decorator.
type Compressed struct {
	inner BlobStore
}

// NewCompressed wraps inner with zstd compression.
func NewCompressed(inner BlobStore) *Compressed {
	return &Compressed{inner: inner}
}

// Open decompresses the named blob's contents as it's read.
func (c *Compressed) Open(name string) (io.ReadCloser, error) {
	r, err := c.inner.Open(name)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	return &decompressReadCloser{dec: dec, underlying: r}, nil
}

// Create compresses everything written before handing it to inner.
func (c *Compressed) Create(name string) (io.WriteCloser, error) {
	w, err := c.inner.Create(name)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		w.Close()
		return nil, err
	}
	return &compressWriteCloser{enc: enc, underlying: w}, nil
}

type decompressReadCloser struct {
	dec        *zstd.Decoder
	underlying io.ReadCloser
}

func (d *decompressReadCloser) Read(p []byte) (int, error) {
	return d.dec.Read(p)
}

func (d *decompressReadCloser) Close() error {
	d.dec.Close()
	return d.underlying.Close()
}

type compressWriteCloser struct {
	enc        *zstd.Encoder
	underlying io.WriteCloser
}

func (c *compressWriteCloser) Write(p []byte) (int, error) {
	return c.enc.Write(p)
}

func (c *compressWriteCloser) Close() error {
	if err := c.enc.Close(); err != nil {
		c.underlying.Close()
		return err
	}
	return c.underlying.Close()
}
