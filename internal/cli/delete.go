package cli

import (
	"context"

	"github.com/paletteapp/palette/internal/session"
)

// DeleteAccount removes the active user's account after an explicit
// confirmation. The confirmation lives here, not in the eraser: the core
// deletes whatever it is told to delete.
func (a *App) DeleteAccount(ctx context.Context) error {
	sess, err := a.sessions.Require(ctx)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, "Delete your account? This cannot be undone.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.eraser.Delete(ctx, sess.Username); err != nil {
		a.log.Error(ctx, "failed to delete account", "error", err)
		return err
	}

	a.toast("Account deleted")
	a.nav.Navigate(session.PageLogin)
	return nil
}
