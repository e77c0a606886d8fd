package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/timereport/internal/client/client"
	"github.com/dmitrijs2005/timereport/internal/client/config"
	"github.com/dmitrijs2005/timereport/internal/client/services"
	"github.com/dmitrijs2005/timereport/internal/client/workspace"
	"github.com/dmitrijs2005/timereport/internal/logging"
)

const appName = "Time Report"

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	authService services.AuthService
	workspace   *workspace.Workspace
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the session database, prepares the service connection and
// wires the services and the workspace. Nothing is sent until the first
// command.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewTimeReportClient(c.ServerEndpointAddr, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, db, log)
	ns := services.NewNoteService(apiClient, log)

	a := newApp(as, workspace.New(ns, as, log), log, os.Stdin, os.Stdout)
	a.config = c
	a.db = db
	return a, nil
}

func newApp(as services.AuthService, ws *workspace.Workspace, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		log:         log,
		authService: as,
		workspace:   ws,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run restores a persisted session, if any, and serves commands until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	fmt.Fprintln(a.out, figure.NewFigure(appName, "", true).String())
	fmt.Fprintln(a.out, "Welcome to Time Report (type 'help' for commands)")

	sess, err := a.authService.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if sess.Authenticated() {
		fmt.Fprintf(a.out, "Logged in as %s (%s)\n", sess.DisplayName, sess.Role.Label())
		_ = a.start(ctx)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "closing client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.Current().Authenticated()
}

func (a *App) isTeacher() bool {
	return a.authService.Current().IsTeacher()
}

// status is shown in the prompt: the display name and the role label.
func (a *App) status() string {
	sess := a.authService.Current()
	if !sess.Authenticated() {
		return ""
	}
	return fmt.Sprintf(" (%s | %s)", sess.DisplayName, sess.Role.Label())
}
