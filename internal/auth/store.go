// Package auth implements the credential lifecycle of the palette client:
// the persisted account populations, login verification, and registration.
package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/paletteapp/palette/internal/hashing"
	"github.com/paletteapp/palette/internal/logging"
	"github.com/paletteapp/palette/internal/models"
	"github.com/paletteapp/palette/internal/storage"
)

// Storage keys owned by this package.
const (
	// KeyRegistered holds the JSON array of user-registered credentials.
	KeyRegistered = "registeredAccounts"

	keySeeded     = "seededAccounts"
	keySeedMarker = "seededAccountsInitialized"
	keyInstallID  = "installId"
)

// CredentialStore is the durable mapping from username to credential, split
// into the seeded and registered populations.
type CredentialStore struct {
	store  storage.Store
	hasher hashing.Hasher
	log    logging.Logger
}

func NewCredentialStore(store storage.Store, hasher hashing.Hasher, log logging.Logger) *CredentialStore {
	return &CredentialStore{store: store, hasher: hasher, log: log}
}

// EnsureSeeded materializes the demo accounts into digest form exactly once
// per client install, along with an install id. Subsequent calls detect the
// persisted marker and do nothing; digests are never recomputed, so the
// seeded population stays stable even if salt logic changes later.
func (c *CredentialStore) EnsureSeeded(ctx context.Context) error {
	marker, err := c.store.Get(ctx, keySeedMarker)
	if err != nil {
		return fmt.Errorf("failed to read seed marker: %w", err)
	}
	if len(marker) > 0 {
		return nil
	}

	creds := make([]models.Credential, 0, len(seededAccounts))
	for _, a := range seededAccounts {
		creds = append(creds, models.Credential{
			Username:       a.Username,
			PasswordDigest: c.hasher.Hash(a.Password),
			DisplayName:    a.DisplayName,
		})
	}

	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal seeded accounts: %w", err)
	}

	return c.store.Update(ctx, func(ctx context.Context, s storage.Store) error {
		if err := s.Set(ctx, keySeeded, data); err != nil {
			return err
		}
		if err := s.Set(ctx, keyInstallID, []byte(uuid.NewString())); err != nil {
			return err
		}
		return s.Set(ctx, keySeedMarker, []byte("1"))
	})
}

// ListSeeded returns the persisted seeded population, empty if not yet seeded.
func (c *CredentialStore) ListSeeded(ctx context.Context) ([]models.Credential, error) {
	return c.list(ctx, keySeeded)
}

// ListRegistered returns all user-registered credentials.
func (c *CredentialStore) ListRegistered(ctx context.Context) ([]models.Credential, error) {
	return c.list(ctx, KeyRegistered)
}

// AddRegistered appends and persists a registered credential. The caller must
// have already checked username uniqueness.
func (c *CredentialStore) AddRegistered(ctx context.Context, cred models.Credential) error {
	creds, err := c.ListRegistered(ctx)
	if err != nil {
		return err
	}
	creds = append(creds, cred)
	return c.save(ctx, creds)
}

// RemoveRegistered filters out the credential with the given username and
// persists the remainder. Removing an unknown username is a no-op.
func (c *CredentialStore) RemoveRegistered(ctx context.Context, username string) error {
	creds, err := c.ListRegistered(ctx)
	if err != nil {
		return err
	}
	kept := creds[:0]
	for _, cred := range creds {
		if cred.Username != username {
			kept = append(kept, cred)
		}
	}
	return c.save(ctx, kept)
}

// list reads and decodes a credential array. A corrupt record is treated as
// empty rather than an error; the next write overwrites it.
func (c *CredentialStore) list(ctx context.Context, key string) ([]models.Credential, error) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if raw == nil {
		return []models.Credential{}, nil
	}

	var creds []models.Credential
	if err := json.Unmarshal(raw, &creds); err != nil {
		c.log.Warn(ctx, "corrupt credential list, treating as empty", "key", key, "error", err)
		return []models.Credential{}, nil
	}
	return creds, nil
}

func (c *CredentialStore) save(ctx context.Context, creds []models.Credential) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal registered accounts: %w", err)
	}
	return c.store.Set(ctx, KeyRegistered, data)
}
