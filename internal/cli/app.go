package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lexdesk/internal/common"
	"github.com/dmitrijs2005/lexdesk/internal/logging"
	"github.com/dmitrijs2005/lexdesk/internal/models"
	"github.com/dmitrijs2005/lexdesk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/lexdesk/internal/services"
)

type App struct {
	db      *sql.DB
	repos   repomanager.RepositoryManager
	auth    *services.AuthService
	docs    *services.DocumentService
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	session *services.Session
}

func NewApp(db *sql.DB, repos repomanager.RepositoryManager, auth *services.AuthService,
	docs *services.DocumentService, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		db:     db,
		repos:  repos,
		auth:   auth,
		docs:   docs,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (a *App) form() prompter {
	return prompter{r: a.reader, w: a.out}
}

// Run creates the first admin if needed and then serves commands until
// exit or end of input.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to lexdesk (type 'help' for commands)")
	if err := a.bootstrap(ctx); err != nil {
		return err
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.Username, a.session.Role)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) isAdmin() bool {
	return a.session != nil && a.session.Role == models.RoleAdmin
}

// requireLogin re-validates the session token, dropping an expired session.
func (a *App) requireLogin() error {
	if a.session == nil {
		return common.ErrorUnauthorized
	}
	if _, err := a.auth.ParseSession(a.session.Token); err != nil {
		a.session = nil
		return fmt.Errorf("%w: session expired, please log in again", common.ErrorUnauthorized)
	}
	return nil
}

func (a *App) requireAdmin() error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	return a.auth.RequireRole(a.session, models.RoleAdmin)
}

// show prints rows. A failed read is logged and still renders an empty
// table, and the error is returned so the loop reports it.
func (a *App) show(ctx context.Context, what string, header []string, rows [][]string, err error) error {
	if err != nil {
		a.logger.Error(ctx, "read failed", "what", what, "error", err)
		table(a.out, header, nil)
		return err
	}
	table(a.out, header, rows)
	return nil
}

func (a *App) done(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

func (a *App) bootstrap(ctx context.Context) error {
	need, err := a.auth.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("check users: %w", err)
	}
	if !need {
		return nil
	}

	fmt.Fprintln(a.out, "No users yet. Create the administrator account.")
	for {
		username, password, err := a.newCredentials()
		if err != nil {
			if errors.Is(err, common.ErrValidation) {
				fmt.Fprintln(a.out, "error:", userMessage(err))
				continue
			}
			return err
		}
		if _, err := a.auth.Bootstrap(ctx, username, password); err != nil {
			if errors.Is(err, common.ErrValidation) {
				fmt.Fprintln(a.out, "error:", userMessage(err))
				continue
			}
			return err
		}
		a.done("Administrator %q created, please log in.", username)
		return nil
	}
}

// newCredentials asks for a username and a password typed twice.
func (a *App) newCredentials() (string, string, error) {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return "", "", err
	}
	password, err := a.newPassword()
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func (a *App) newPassword() (string, error) {
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return "", err
	}
	again, err := GetPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		return "", err
	}
	if password != again {
		return "", fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	return password, nil
}
