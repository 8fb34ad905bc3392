package cli

import (
	"context"
	"fmt"
	"time"
)

// Whoami prints the active identity. It is a protected page: the guard runs
// first and bounces unauthenticated users to login.
func (a *App) Whoami(ctx context.Context) error {
	sess, err := a.sessions.Require(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s) since %s\n",
		sess.DisplayName, sess.Username, sess.LoginTime.Format(time.RFC822))
	return nil
}
