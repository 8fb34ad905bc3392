// Package account implements account deletion.
package account

import (
	"context"

	"github.com/paletteapp/palette/internal/auth"
	"github.com/paletteapp/palette/internal/hashing"
	"github.com/paletteapp/palette/internal/logging"
	"github.com/paletteapp/palette/internal/profile"
	"github.com/paletteapp/palette/internal/session"
	"github.com/paletteapp/palette/internal/storage"
)

// Eraser removes an account and everything attached to it.
type Eraser struct {
	store  storage.Store
	hasher hashing.Hasher
	log    logging.Logger
}

func NewEraser(store storage.Store, hasher hashing.Hasher, log logging.Logger) *Eraser {
	return &Eraser{store: store, hasher: hasher, log: log}
}

// Delete removes the user's profile blob and registered credential and ends
// the current session, whoever it belongs to. The three writes run in one
// store transaction.
//
// Delete performs no authorization check of its own: confirming intent and
// verifying that the caller may delete this account are the caller's job.
func (e *Eraser) Delete(ctx context.Context, username string) error {
	return e.store.Update(ctx, func(ctx context.Context, s storage.Store) error {
		if err := profile.NewBlobStore(s).Delete(ctx, username); err != nil {
			return err
		}

		creds := auth.NewCredentialStore(s, e.hasher, e.log)
		if err := creds.RemoveRegistered(ctx, username); err != nil {
			return err
		}

		return s.Delete(ctx, session.Key)
	})
}
