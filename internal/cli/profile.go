package cli

import (
	"context"
	"fmt"
)

// Profile is the protected profile page: it shows the active user's profile
// blob.
func (a *App) Profile(ctx context.Context) error {
	sess, err := a.sessions.Require(ctx)
	if err != nil {
		return err
	}

	blob, err := a.profiles.Get(ctx, sess.Username)
	if err != nil {
		a.log.Error(ctx, "failed to load profile", "error", err)
		return err
	}
	if blob == nil {
		a.toast("No profile saved yet")
		return nil
	}

	fmt.Fprintln(a.out, string(blob))
	return nil
}

// SetProfile replaces the active user's profile blob.
func (a *App) SetProfile(ctx context.Context) error {
	sess, err := a.sessions.Require(ctx)
	if err != nil {
		return err
	}

	text, err := GetSimpleText(a.reader, "Enter profile text", a.out)
	if err != nil {
		return err
	}

	if err := a.profiles.Save(ctx, sess.Username, []byte(text)); err != nil {
		a.log.Error(ctx, "failed to save profile", "error", err)
		return err
	}
	a.toast("Profile saved")
	return nil
}
