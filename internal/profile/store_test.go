package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paletteapp/palette/internal/storage"
)

func TestBlobStore_RoundTrip(t *testing.T) {
	b := NewBlobStore(storage.NewMemoryStore())
	ctx := context.Background()

	blob, err := b.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, b.Save(ctx, "bob", []byte(`{"bio":"hi"}`)))

	blob, err = b.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"bio":"hi"}`), blob)
}

func TestBlobStore_BlobsAreNamespacedByUsername(t *testing.T) {
	store := storage.NewMemoryStore()
	b := NewBlobStore(store)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, "bob", []byte("b")))
	require.NoError(t, b.Save(ctx, "alice", []byte("a")))

	blob, err := b.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), blob)

	raw, err := store.Get(ctx, Key("alice"))
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), raw)
}

func TestBlobStore_DeleteIsIdempotent(t *testing.T) {
	b := NewBlobStore(storage.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, "bob", []byte("x")))
	require.NoError(t, b.Delete(ctx, "bob"))

	blob, err := b.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, b.Delete(ctx, "bob"))
}
