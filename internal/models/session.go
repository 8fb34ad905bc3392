package models

import "time"

// Session is the single persisted record denoting the currently authenticated
// identity on this client. At most one exists at a time; it never expires on
// its own.
type Session struct {
	Username string `json:"username"`

	// DisplayName is resolved at login time: the credential's display name,
	// or the username when no display name is set.
	DisplayName string `json:"name"`

	LoginTime time.Time `json:"loginTime"`
}
