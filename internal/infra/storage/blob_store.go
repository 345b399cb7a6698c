// Package storage implements the ObjectStorage interface on a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"

	"sejour/config"
	"sejour/internal/domain/lifecycle"
	"sejour/internal/domain/service"
	"sejour/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/s3blob" // register the s3:// bucket scheme
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobStore stores property image binaries in a bucket opened from a
// gocloud URL (s3://bucket for production, file:// or mem:// in tests).
type blobStore struct {
	bucket *blob.Bucket
}

// New opens the configured bucket and ties its lifetime to the fx lifecycle.
func New(params Params) (service.ObjectStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Opened storage bucket", slog.String("url", params.Config.Storage.BucketURL))

	return &blobStore{bucket: bucket}, nil
}

// NewWithBucket wraps an already opened bucket. Used by tests with an
// in-memory bucket.
func NewWithBucket(bucket *blob.Bucket) service.ObjectStorage {
	return &blobStore{bucket: bucket}
}

// Put writes one blob under the given key. Calls are independent; the batch
// upload flow runs many of these concurrently against the same bucket.
func (s *blobStore) Put(ctx context.Context, key string, data []byte, propertyID string) error {
	opts := &blob.WriterOptions{
		Metadata: map[string]string{"property_id": propertyID},
	}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return errors.Wrapf(err, "failed to store object %s", key)
	}

	return nil
}

// Delete removes the blob under the given key. A missing key is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}
