// Package models defines client-side data models persisted by the palette
// auth core.
package models

import "time"

// Credential is a known account: a seeded demo account or a user-registered
// one. The password is never stored; only its salted digest is.
type Credential struct {
	// Username is the unique key across seeded and registered populations.
	Username string `json:"username"`

	// PasswordDigest is the fixed-length lowercase hex digest of the
	// salted password.
	PasswordDigest string `json:"passwordDigest"`

	// DisplayName is the human-readable name shown in the navigation shell.
	DisplayName string `json:"displayName"`

	// CreatedAt is the registration time. Zero for seeded accounts.
	CreatedAt time.Time `json:"createdAt"`
}
