// Package common defines sentinel errors shared across the palette client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Authentication errors. An unknown username and a wrong password map to
	// the same value, so callers cannot tell the two cases apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Registration errors.
	ErrUsernameTaken = errors.New("username is already taken")

	// Session / guard errors.
	ErrNoSession = errors.New("not logged in")
)
