package auth

import (
	"context"
	"time"

	"github.com/paletteapp/palette/internal/common"
	"github.com/paletteapp/palette/internal/models"
)

// Registrar creates new accounts, enforcing username uniqueness across the
// seeded and registered populations.
type Registrar struct {
	creds *CredentialStore
	now   func() time.Time
}

func NewRegistrar(creds *CredentialStore) *Registrar {
	return &Registrar{creds: creds, now: time.Now}
}

// Register creates a credential for the given username. A username already
// present in either population yields common.ErrUsernameTaken and no state
// change.
//
// The uniqueness check and the insert are separate store operations; two
// processes sharing the store file can both pass the check. There is no
// cross-process locking primitive here, so the last writer wins.
func (r *Registrar) Register(ctx context.Context, displayName, username, password string) error {
	if err := r.creds.EnsureSeeded(ctx); err != nil {
		return err
	}

	registered, err := r.creds.ListRegistered(ctx)
	if err != nil {
		return err
	}
	seeded, err := r.creds.ListSeeded(ctx)
	if err != nil {
		return err
	}

	for _, cred := range registered {
		if cred.Username == username {
			return common.ErrUsernameTaken
		}
	}
	for _, cred := range seeded {
		if cred.Username == username {
			return common.ErrUsernameTaken
		}
	}

	cred := models.Credential{
		Username:       username,
		PasswordDigest: r.creds.hasher.Hash(password),
		DisplayName:    displayName,
		CreatedAt:      r.now(),
	}

	return r.creds.AddRegistered(ctx, cred)
}
