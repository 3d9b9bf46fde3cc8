// Package s3 implements store.BlobStore against an S3-compatible bucket,
// for shipping built dictionary artifacts to a shared location instead
// of a local filesystem.
package s3

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/kotaroooo0/kanakanji/store"
)

// Store implements store.BlobStore for a single S3 bucket, keying blobs
// under prefix.
type Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewStore returns a Store for bucket, prefixing every blob name with
// prefix (e.g. "dict/v1/").
func NewStore(client *s3.Client, bucket, prefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open fetches the named object and returns a streaming reader over its
// body.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	ctx := context.Background()
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return out.Body, nil
}

// Create returns a writer that uploads everything written to it as a
// single object on Close, via the s3 transfer manager.
func (s *Store) Create(name string) (io.WriteCloser, error) {
	pr, pw := io.Pipe()
	uploader := manager.NewUploader(s.client)
	done := make(chan error, 1)

	go func() {
		_, err := uploader.Upload(context.Background(), &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.key(name)),
			Body:   pr,
		})
		done <- err
	}()

	return &writableObject{pw: pw, done: done}, nil
}

type writableObject struct {
	pw   *io.PipeWriter
	done chan error
}

func (w *writableObject) Write(p []byte) (int, error) {
	return w.pw.Write(p)
}

func (w *writableObject) Close() error {
	if err := w.pw.Close(); err != nil {
		return err
	}
	return <-w.done
}
