// Package cli is the terminal front-end of the palette client: the stand-in
// for the application's pages. REPL commands play the role of pages, the
// status line plays the navigation shell, and printed messages play toasts.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/paletteapp/palette/internal/account"
	"github.com/paletteapp/palette/internal/auth"
	"github.com/paletteapp/palette/internal/config"
	"github.com/paletteapp/palette/internal/hashing"
	"github.com/paletteapp/palette/internal/logging"
	"github.com/paletteapp/palette/internal/profile"
	"github.com/paletteapp/palette/internal/session"
	"github.com/paletteapp/palette/internal/storage"
)

type App struct {
	config        *config.Config
	db            *sql.DB
	nav           *pageNavigator
	creds         *auth.CredentialStore
	authenticator *auth.Authenticator
	registrar     *auth.Registrar
	sessions      *session.Manager
	profiles      *profile.BlobStore
	eraser        *account.Eraser
	log           logging.Logger
	reader        *bufio.Reader
	out           io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open client database: %w", err)
	}

	store := storage.NewSQLiteStore(db)
	log := newLogger(c.LogLevel, os.Stderr)
	hasher := hashing.NewSHA256Hasher()

	app := &App{
		config: c,
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	app.nav = &pageNavigator{out: app.out}
	app.creds = auth.NewCredentialStore(store, hasher, log)
	app.authenticator = auth.NewAuthenticator(app.creds)
	app.registrar = auth.NewRegistrar(app.creds)
	app.sessions = session.NewManager(store, app.nav, log)
	app.profiles = profile.NewBlobStore(store)
	app.eraser = account.NewEraser(store, hasher, log)

	return app, nil
}

func newLogger(level string, w io.Writer) logging.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return logging.NewSlogLogger(slog.New(h))
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.creds.EnsureSeeded(ctx); err != nil {
		a.log.Error(ctx, "failed to materialize demo accounts", "error", err)
		return
	}

	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

// Close releases the underlying database handle.
func (a *App) Close() {
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	sess, err := a.sessions.Current(context.Background())
	return err == nil && sess != nil
}

// toast shows a fire-and-forget message to the user.
func (a *App) toast(msg string) {
	fmt.Fprintln(a.out, msg)
}
