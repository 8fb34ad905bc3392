// Package profile persists per-user profile blobs. The auth core treats the
// blob as opaque; the profile page owns its shape.
package profile

import (
	"context"
	"fmt"

	"github.com/paletteapp/palette/internal/storage"
)

const keyPrefix = "profile_"

// Key returns the storage key of a user's profile blob.
func Key(username string) string { return keyPrefix + username }

// BlobStore reads and writes profile blobs keyed by username.
type BlobStore struct {
	store storage.Store
}

func NewBlobStore(store storage.Store) *BlobStore {
	return &BlobStore{store: store}
}

// Get returns the user's profile blob, or (nil, nil) when none exists.
func (b *BlobStore) Get(ctx context.Context, username string) ([]byte, error) {
	blob, err := b.store.Get(ctx, Key(username))
	if err != nil {
		return nil, fmt.Errorf("failed to read profile for %s: %w", username, err)
	}
	return blob, nil
}

// Save stores the user's profile blob, overwriting any previous one.
func (b *BlobStore) Save(ctx context.Context, username string, blob []byte) error {
	if err := b.store.Set(ctx, Key(username), blob); err != nil {
		return fmt.Errorf("failed to save profile for %s: %w", username, err)
	}
	return nil
}

// Delete removes the user's profile blob. Idempotent.
func (b *BlobStore) Delete(ctx context.Context, username string) error {
	if err := b.store.Delete(ctx, Key(username)); err != nil {
		return fmt.Errorf("failed to delete profile for %s: %w", username, err)
	}
	return nil
}
