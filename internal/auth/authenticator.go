package auth

import (
	"context"

	"github.com/paletteapp/palette/internal/common"
	"github.com/paletteapp/palette/internal/models"
)

// Authenticator verifies username/password pairs against the credential
// store.
type Authenticator struct {
	creds *CredentialStore
}

func NewAuthenticator(creds *CredentialStore) *Authenticator {
	return &Authenticator{creds: creds}
}

// Authenticate returns the credential matching the given username and
// password. The registered population is searched before the seeded one, so a
// registered account shadows a seeded account with the same username.
//
// Both an unknown username and a wrong password return
// common.ErrInvalidCredentials; the two cases are indistinguishable to the
// caller. Username comparison is case-sensitive and exact.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*models.Credential, error) {
	if err := a.creds.EnsureSeeded(ctx); err != nil {
		return nil, err
	}

	digest := a.creds.hasher.Hash(password)

	registered, err := a.creds.ListRegistered(ctx)
	if err != nil {
		return nil, err
	}
	if cred := match(registered, username, digest); cred != nil {
		return cred, nil
	}

	seeded, err := a.creds.ListSeeded(ctx)
	if err != nil {
		return nil, err
	}
	if cred := match(seeded, username, digest); cred != nil {
		return cred, nil
	}

	return nil, common.ErrInvalidCredentials
}

func match(creds []models.Credential, username, digest string) *models.Credential {
	for i := range creds {
		if creds[i].Username == username && creds[i].PasswordDigest == digest {
			return &creds[i]
		}
	}
	return nil
}
