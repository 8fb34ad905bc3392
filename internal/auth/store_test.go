package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paletteapp/palette/internal/hashing"
	"github.com/paletteapp/palette/internal/logging"
	"github.com/paletteapp/palette/internal/models"
	"github.com/paletteapp/palette/internal/storage"
)

func setupCreds(t *testing.T) (*CredentialStore, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	creds := NewCredentialStore(store, hashing.NewSHA256Hasher(), logging.NewNop())
	return creds, store
}

func TestEnsureSeeded_MaterializesDemoAccounts(t *testing.T) {
	creds, store := setupCreds(t)
	ctx := context.Background()

	require.NoError(t, creds.EnsureSeeded(ctx))

	seeded, err := creds.ListSeeded(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 2)

	assert.Equal(t, "admin", seeded[0].Username)
	assert.Equal(t, "Administrator", seeded[0].DisplayName)
	assert.Equal(t,
		"04113f6e30f63488c91d3b546da70573c75066503c1a52ef25d7e96331b52fdc",
		seeded[0].PasswordDigest)

	assert.Equal(t, "user1", seeded[1].Username)
	assert.Equal(t,
		"a9417370fb8efb7d429664c5d28558b9717fd4cbb6e3e2e4facd935df589b082",
		seeded[1].PasswordDigest)

	marker, err := store.Get(ctx, keySeedMarker)
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), marker)

	installID, err := store.Get(ctx, keyInstallID)
	require.NoError(t, err)
	assert.NotEmpty(t, installID)
}

func TestEnsureSeeded_IsIdempotent(t *testing.T) {
	creds, store := setupCreds(t)
	ctx := context.Background()

	require.NoError(t, creds.EnsureSeeded(ctx))

	first, err := creds.ListSeeded(ctx)
	require.NoError(t, err)
	installID, err := store.Get(ctx, keyInstallID)
	require.NoError(t, err)

	require.NoError(t, creds.EnsureSeeded(ctx))

	second, err := creds.ListSeeded(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "second call must not re-append or re-hash")

	installID2, err := store.Get(ctx, keyInstallID)
	require.NoError(t, err)
	assert.Equal(t, installID, installID2, "install id is written once")
}

func TestEnsureSeeded_SkipsRecomputationWhenMarkerPresent(t *testing.T) {
	creds, store := setupCreds(t)
	ctx := context.Background()

	// Marker present but no seeded data: detection goes by the marker alone.
	require.NoError(t, store.Set(ctx, keySeedMarker, []byte("1")))

	require.NoError(t, creds.EnsureSeeded(ctx))

	seeded, err := creds.ListSeeded(ctx)
	require.NoError(t, err)
	assert.Empty(t, seeded)
}

func TestListSeeded_EmptyBeforeSeeding(t *testing.T) {
	creds, _ := setupCreds(t)

	seeded, err := creds.ListSeeded(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seeded)
}

func TestAddAndRemoveRegistered(t *testing.T) {
	creds, _ := setupCreds(t)
	ctx := context.Background()

	require.NoError(t, creds.AddRegistered(ctx, models.Credential{Username: "bob", PasswordDigest: "d1"}))
	require.NoError(t, creds.AddRegistered(ctx, models.Credential{Username: "carol", PasswordDigest: "d2"}))

	registered, err := creds.ListRegistered(ctx)
	require.NoError(t, err)
	require.Len(t, registered, 2)

	require.NoError(t, creds.RemoveRegistered(ctx, "bob"))

	registered, err = creds.ListRegistered(ctx)
	require.NoError(t, err)
	require.Len(t, registered, 1)
	assert.Equal(t, "carol", registered[0].Username)

	// removing an unknown username is a no-op
	require.NoError(t, creds.RemoveRegistered(ctx, "nobody"))
	registered, err = creds.ListRegistered(ctx)
	require.NoError(t, err)
	require.Len(t, registered, 1)
}

func TestListRegistered_CorruptRecordTreatedAsEmpty(t *testing.T) {
	creds, store := setupCreds(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyRegistered, []byte("{not json")))

	registered, err := creds.ListRegistered(ctx)
	require.NoError(t, err)
	assert.Empty(t, registered)

	// the next write heals the record
	require.NoError(t, creds.AddRegistered(ctx, models.Credential{Username: "dave"}))
	registered, err = creds.ListRegistered(ctx)
	require.NoError(t, err)
	require.Len(t, registered, 1)
}
