package cli

import (
	"context"
	"errors"

	"github.com/paletteapp/palette/internal/common"
	"github.com/paletteapp/palette/internal/session"
)

// Login is the login page. The inverse guard runs first: an authenticated
// user is sent home instead of seeing the form.
func (a *App) Login(ctx context.Context) error {
	if err := a.sessions.RedirectIfAuthenticated(ctx); err != nil {
		return err
	}
	if a.isLoggedIn() {
		return nil
	}

	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	cred, err := a.authenticator.Authenticate(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			a.toast("Invalid username or password")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	if err := a.sessions.Start(ctx, cred); err != nil {
		a.log.Error(ctx, "failed to start session", "error", err)
		return err
	}

	name := cred.DisplayName
	if name == "" {
		name = cred.Username
	}
	a.toast("Welcome, " + name + "!")
	a.nav.Navigate(session.PageHome)
	return nil
}

// Logout asks for confirmation, ends the session, and returns the user to
// the login page.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.sessions.Require(ctx); err != nil {
		return err
	}

	ok, err := Confirm(a.reader, "Log out?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.sessions.End(ctx); err != nil {
		a.log.Error(ctx, "failed to end session", "error", err)
		return err
	}
	a.nav.Navigate(session.PageLogin)
	return nil
}
