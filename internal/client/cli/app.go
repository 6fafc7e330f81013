package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/userdeck/internal/client/client"
	"github.com/dmitrijs2005/userdeck/internal/client/config"
	"github.com/dmitrijs2005/userdeck/internal/client/repositories/session"
	"github.com/dmitrijs2005/userdeck/internal/client/services"
	"github.com/dmitrijs2005/userdeck/internal/filex"
	"github.com/dmitrijs2005/userdeck/internal/logging"
)

type App struct {
	config     *config.Config
	session    services.SessionService
	collection services.CollectionService
	logger     logging.Logger
	reader     *bufio.Reader
	out        io.Writer
	format     string
	closeFn    func() error
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.New(os.Stderr, c.LogLevel, "text")

	apiClient, err := client.NewHTTPClient(c.ServerURL,
		client.WithAPIKey(c.APIKey),
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	store, closeFn, err := openSessionStore(ctx, c.SessionDB)
	if err != nil {
		logger.Error(ctx, "error initializing session store", "error", err)
		return nil, err
	}

	sess := services.NewSessionService(apiClient, store, logger)
	apiClient.UseTokenSource(sess)

	return &App{
		config:     c,
		session:    sess,
		collection: services.NewUserCollection(apiClient, logger),
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		format:     c.OutputFormat,
		closeFn:    closeFn,
	}, nil
}

// openSessionStore returns the SQLite store when dsn (a file path) is set,
// otherwise a store that forgets the credential on exit.
func openSessionStore(ctx context.Context, dsn string) (session.Repository, func() error, error) {
	if dsn == "" {
		return session.NewMemoryRepository(), func() error { return nil }, nil
	}

	path, err := filex.EnsureParentDir(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open session db: %w", err)
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open session db: %w", err)
	}
	return session.NewSQLiteRepository(db), db.Close, nil
}

// Run resumes a persisted session if there is one, then blocks in the REPL
// until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closeFn == nil {
			return
		}
		if err := a.closeFn(); err != nil {
			a.logger.Warn(ctx, "error closing session store", "error", err)
		}
	}()

	printlnFn("Welcome to userdeck (type 'help' for commands)")

	if cred, ok, err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	} else if ok {
		printlnFn("Resumed session for", cred.Identifier)
		_ = a.afterFetch(ctx, a.collection.FetchPage(ctx, 1))
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.CurrentCredential()
	return ok
}

// status is shown in the prompt: the logged-in identifier and the page.
func (a *App) status() string {
	cred, ok := a.session.CurrentCredential()
	if !ok {
		return "(logged out)"
	}
	st := a.collection.State()
	return fmt.Sprintf("(%s p%d/%d)", cred.Identifier, st.Page, st.TotalPages)
}

// report prints the outcome of a collection operation. A rejected credential
// ends the session so the operator is sent back to login.
func (a *App) report(ctx context.Context, err error) error {
	if n := a.collection.Notice(); !n.IsZero() {
		fmt.Fprintln(a.out, n.Text)
		a.collection.DismissNotice()
	} else if err != nil {
		fmt.Fprintln(a.out, err.Error())
	}

	if err != nil && errors.Is(err, client.ErrUnauthorized) {
		if cerr := a.session.ClearCredential(ctx); cerr != nil {
			a.logger.Warn(ctx, "error clearing session", "error", cerr)
		}
		a.collection.Reset()
		fmt.Fprintln(a.out, "Session expired, please login again.")
	}
	return err
}
