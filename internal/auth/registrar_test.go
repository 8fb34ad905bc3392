package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paletteapp/palette/internal/common"
)

func TestRegister_CreatesCredential(t *testing.T) {
	creds, _ := setupCreds(t)
	ctx := context.Background()

	r := NewRegistrar(creds)
	loginTime := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	r.now = func() time.Time { return loginTime }

	require.NoError(t, r.Register(ctx, "Alice", "alice", "pw1"))

	registered, err := creds.ListRegistered(ctx)
	require.NoError(t, err)
	require.Len(t, registered, 1)

	cred := registered[0]
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "Alice", cred.DisplayName)
	assert.Equal(t, loginTime, cred.CreatedAt)
	assert.Equal(t,
		"4572a40a50ef54694ea739ed51552f6ed799f8285fa200bcf8143f4351f61eca",
		cred.PasswordDigest, "stored digest must be the salted hash, never plaintext")
}

func TestRegister_DuplicateUsernameFailsWithoutStateChange(t *testing.T) {
	creds, _ := setupCreds(t)
	ctx := context.Background()
	r := NewRegistrar(creds)

	require.NoError(t, r.Register(ctx, "Alice", "alice", "pw1"))

	err := r.Register(ctx, "Another Alice", "alice", "pw2")
	require.ErrorIs(t, err, common.ErrUsernameTaken)

	registered, err := creds.ListRegistered(ctx)
	require.NoError(t, err)
	require.Len(t, registered, 1, "failed registration must not mutate state")
	assert.Equal(t,
		"4572a40a50ef54694ea739ed51552f6ed799f8285fa200bcf8143f4351f61eca",
		registered[0].PasswordDigest, "the first registration's digest must survive")
}

func TestRegister_SeededUsernameIsTaken(t *testing.T) {
	creds, _ := setupCreds(t)
	ctx := context.Background()

	err := NewRegistrar(creds).Register(ctx, "Imposter", "admin", "pw")
	require.ErrorIs(t, err, common.ErrUsernameTaken)

	registered, err := creds.ListRegistered(ctx)
	require.NoError(t, err)
	assert.Empty(t, registered)
}
