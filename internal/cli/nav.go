package cli

import (
	"context"
	"fmt"
	"io"
)

// pageNavigator renders page switches as terminal messages. A terminal has no
// real pages, so announcing the destination keeps guard redirects observable.
type pageNavigator struct {
	out io.Writer
}

func (n *pageNavigator) Navigate(page string) {
	fmt.Fprintf(n.out, "-> %s\n", page)
}

// statusLine renders the navigation-shell header shown in the prompt: the
// active user's display name, or "guest" when nobody is logged in.
func (a *App) statusLine() string {
	sess, err := a.sessions.Current(context.Background())
	if err != nil || sess == nil {
		return "guest"
	}
	return sess.DisplayName
}
