// Package session tracks the single authenticated identity persisted on this
// client and provides the guard checks run at the start of every protected
// flow.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/paletteapp/palette/internal/common"
	"github.com/paletteapp/palette/internal/logging"
	"github.com/paletteapp/palette/internal/models"
	"github.com/paletteapp/palette/internal/storage"
)

// Key is the storage key of the persisted session record.
const Key = "currentSession"

// Well-known page names used by guards.
const (
	PageLogin = "login"
	PageHome  = "index"
)

// Navigator is the presentation-layer collaborator that switches the user to
// a named page.
type Navigator interface {
	Navigate(page string)
}

// Manager owns the persisted session record. It records that some user is
// logged in; it never verifies credentials itself.
type Manager struct {
	store storage.Store
	nav   Navigator
	log   logging.Logger
	now   func() time.Time
}

func NewManager(store storage.Store, nav Navigator, log logging.Logger) *Manager {
	return &Manager{store: store, nav: nav, log: log, now: time.Now}
}

// Current returns the persisted session, or nil if none exists. A corrupt
// record is treated as absent; the next Start overwrites it.
func (m *Manager) Current(ctx context.Context) (*models.Session, error) {
	raw, err := m.store.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		m.log.Warn(ctx, "corrupt session record, treating as absent", "error", err)
		return nil, nil
	}
	return &sess, nil
}

// Start persists a session for the given credential, overwriting any prior
// session. The display name falls back to the username when unset.
func (m *Manager) Start(ctx context.Context, cred *models.Credential) error {
	name := cred.DisplayName
	if name == "" {
		name = cred.Username
	}

	sess := models.Session{
		Username:    cred.Username,
		DisplayName: name,
		LoginTime:   m.now(),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return m.store.Set(ctx, Key, data)
}

// End deletes the persisted session. Ending an absent session is a no-op.
func (m *Manager) End(ctx context.Context) error {
	return m.store.Delete(ctx, Key)
}

// Require is the page guard. It returns the current session if one exists;
// otherwise it navigates to the login page and returns common.ErrNoSession so
// the calling flow aborts. Flows that skip this call are unprotected — the
// guard is opt-in per flow, not a router-level gate.
func (m *Manager) Require(ctx context.Context) (*models.Session, error) {
	sess, err := m.Current(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		m.nav.Navigate(PageLogin)
		return nil, common.ErrNoSession
	}
	return sess, nil
}

// RedirectIfAuthenticated is the inverse guard for the login and registration
// pages: if a session exists, it navigates home.
func (m *Manager) RedirectIfAuthenticated(ctx context.Context) error {
	sess, err := m.Current(ctx)
	if err != nil {
		return err
	}
	if sess != nil {
		m.nav.Navigate(PageHome)
	}
	return nil
}
