// Package server wires the stub directory server: configuration, logging,
// the in-memory directory and the HTTP API, with graceful shutdown on
// SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userdeck/internal/logging"
	"github.com/dmitrijs2005/userdeck/internal/server/auth"
	"github.com/dmitrijs2005/userdeck/internal/server/config"
	"github.com/dmitrijs2005/userdeck/internal/server/directory"
	"github.com/dmitrijs2005/userdeck/internal/server/httpapi"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	directory *directory.Service
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, "info", "json")

	repo := directory.NewMemoryRepository(directory.SeedUsers())
	svc, err := directory.NewService(repo, auth.NewBcryptPasswordHasher(), logger, c)
	if err != nil {
		return nil, fmt.Errorf("directory init error: %w", err)
	}

	return &App{config: c, logger: logger, directory: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until a termination signal arrives or the server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	router := httpapi.NewRouter(app.directory, app.logger, app.config.BasePath, app.config.AllowOrigins)
	s := httpapi.NewServer(app.config.HTTPAddr, router, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}
	return nil
}
