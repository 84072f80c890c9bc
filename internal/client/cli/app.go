package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/sportradar/sportradar-cli/internal/client/api"
	"github.com/sportradar/sportradar-cli/internal/client/config"
	"github.com/sportradar/sportradar-cli/internal/client/guard"
	"github.com/sportradar/sportradar-cli/internal/client/repositories/tokens"
	"github.com/sportradar/sportradar-cli/internal/client/session"
	"github.com/sportradar/sportradar-cli/internal/logging"
)

// App wires the CLI front end together: configuration, the API gateway,
// the session store and the guard-gated command handlers.
type App struct {
	config  *config.Config
	session *session.Store
	api     api.Client
	log     logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := tokens.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	repo := tokens.NewSQLiteRepository(db)

	client, err := api.New(cfg.APIBaseURL, repo, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(client, repo, log)

	return &App{
		config:  cfg,
		session: store,
		api:     client,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores any persisted session, starts the background token renewal
// loop and hands control to the REPL. It returns when the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	// A stale token just means the session starts logged out; the error is
	// not fatal.
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.session.StartRenewalLoop(ctx, a.config.RenewInterval)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt suffix, e.g. "(anna@corp.fr business)".
func (a *App) status() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Email
	if u.Type != "" {
		s += " " + u.Type
	}
	if u.IsStaff {
		s += " staff"
	}
	return "(" + s + ")"
}

// guarded evaluates g and reports whether the protected command may run.
// On denial it prints where the user would be redirected instead.
func (a *App) guarded(g guard.Guard) bool {
	d := g(a.session)
	if d.Allowed {
		return true
	}
	switch d.RedirectTo {
	case guard.ViewLogin:
		printlnFn("Please log in first (command: login)")
	case guard.ViewDashboard:
		printlnFn("This area is for business accounts; back to your dashboard.")
	default:
		printlnFn("You don't have access to this area.")
	}
	return false
}
