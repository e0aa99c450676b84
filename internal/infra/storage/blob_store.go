// Package storage keeps uploaded files in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"

	"apparel/config"
	"apparel/internal/domain/service"
	"apparel/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// ErrObjectNotFound is returned by Get for a missing key.
var ErrObjectNotFound = errors.New("object not found")

// BlobStore implements service.ObjectStore on a gocloud.dev bucket.
type BlobStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the object store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by storage.bucketUrl and closes it on shutdown.
func New(params Params) (service.ObjectStore, error) {
	bucketURL := params.Config.Storage.BucketURL

	store, err := Open(params.Ctx, bucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Object store opened", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Open opens a bucket by URL, e.g. mem://, file:///var/data or gs://bucket.
func Open(ctx context.Context, bucketURL string) (*BlobStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &BlobStore{bucket: bucket}, nil
}

func (s *BlobStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "write object %s", key)
	}

	return key, nil
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read object %s", key)
	}

	return data, nil
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
