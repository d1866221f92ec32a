package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/scenes/internal/errors"
)

func TestNewBucketRecordStore(t *testing.T) {
	ctx := context.Background()

	t.Run("opens an in-memory bucket", func(t *testing.T) {
		store, err := NewBucketRecordStore(ctx, "mem://")
		require.NoError(t, err)
		defer store.Close()

		assert.NotNil(t, store)
	})

	t.Run("fails on an unknown scheme", func(t *testing.T) {
		store, err := NewBucketRecordStore(ctx, "bogus://nowhere")
		assert.Error(t, err)
		assert.Nil(t, store)
	})
}

func TestBucketRecordStore_GetAndPut(t *testing.T) {
	ctx := context.Background()

	store, err := NewBucketRecordStore(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	t.Run("missing key returns not found", func(t *testing.T) {
		record, err := store.Get(ctx, "scenes:missing")
		assert.Empty(t, record)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("put then get round-trips the record", func(t *testing.T) {
		err := store.Put(ctx, "scenes:abc123", "sealed-blob")
		require.NoError(t, err)

		record, err := store.Get(ctx, "scenes:abc123")
		require.NoError(t, err)
		assert.Equal(t, "sealed-blob", record)
	})

	t.Run("put replaces the previous record", func(t *testing.T) {
		err := store.Put(ctx, "scenes:abc123", "sealed-blob-v2")
		require.NoError(t, err)

		record, err := store.Get(ctx, "scenes:abc123")
		require.NoError(t, err)
		assert.Equal(t, "sealed-blob-v2", record)
	})
}
