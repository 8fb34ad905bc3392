package cli

import (
	"context"
	"errors"

	"github.com/paletteapp/palette/internal/common"
)

// Register is the registration page. Like Login, it is gated by the inverse
// guard.
func (a *App) Register(ctx context.Context) error {
	if err := a.sessions.RedirectIfAuthenticated(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		return nil
	}

	displayName, err := GetSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.registrar.Register(ctx, displayName, username, string(password)); err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			a.toast("This username is already taken")
		} else {
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return err
	}

	a.toast("Registration complete. You can now log in.")
	return nil
}
