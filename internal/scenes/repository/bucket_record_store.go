package repository

import (
	"context"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"

	apperrors "github.com/allisson/scenes/internal/errors"
)

// BucketRecordStore implements scene record persistence on top of a
// gocloud.dev blob bucket. Each storage key maps to one object whose
// contents are the record string.
type BucketRecordStore struct {
	bucket *blob.Bucket
}

// NewBucketRecordStore opens the bucket identified by bucketURL (for
// example "mem://", "file:///var/scenes" or "s3://scenes-bucket").
func NewBucketRecordStore(ctx context.Context, bucketURL string) (*BucketRecordStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open bucket")
	}

	return &BucketRecordStore{bucket: bucket}, nil
}

// Get retrieves the record stored at storageKey.
func (b *BucketRecordStore) Get(ctx context.Context, storageKey string) (string, error) {
	data, err := b.bucket.ReadAll(ctx, storageKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.Wrap(err, "failed to get scene record")
	}

	return string(data), nil
}

// Put stores record at storageKey, replacing any previous value.
// Concurrent puts for the same key are last-write-wins.
func (b *BucketRecordStore) Put(ctx context.Context, storageKey string, record string) error {
	err := b.bucket.WriteAll(ctx, storageKey, []byte(record), nil)
	if err != nil {
		return apperrors.Wrap(err, "failed to put scene record")
	}

	return nil
}

// Close releases the underlying bucket resources.
func (b *BucketRecordStore) Close() error {
	return b.bucket.Close()
}
