package storage

import (
	"context"
	"testing"

	"apparel/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	key, err := store.Put(ctx, "designs/D-101/artwork.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "designs/D-101/artwork.png", key)

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Get(ctx, key)
	assert.True(t, errors.Is(err, ErrObjectNotFound))
}

func TestBlobStore_DeleteMissingKey(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer store.Close()

	assert.NoError(t, store.Delete(ctx, "missing"))
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "nope://bucket")
	assert.Error(t, err)
}
