package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/futurexhq/futurex/internal/lms/service"
	"github.com/futurexhq/futurex/internal/lms/store"
	"github.com/futurexhq/futurex/internal/lms/store/drivers/sqlite"
	"github.com/futurexhq/futurex/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags. Later problem
const BuildVersion = "v0.1.0"

// Application wires the client core together: storage, directory, session,
// reviews, catalog. One instance per process run; New already restores the
// persisted session so commands can read it straight away.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db store.Store

	Directory *service.DirectoryService
	Session   *service.SessionService
	Reviews   *service.ReviewService
	Catalog   *service.CatalogService
}

// New opens the data file, migrates it, and brings every service up.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			App:     "futurex",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	db, err := sqlite.NewStore(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("open data file %q: %w", cfg.DataFile, err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	app.db = db

	app.Directory = &service.DirectoryService{Store: db}
	app.Session = &service.SessionService{Store: db, Directory: app.Directory}
	app.Reviews = &service.ReviewService{Store: db}
	app.Catalog = &service.CatalogService{}

	ctx = app.Context(ctx)
	if err := app.Directory.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize directory: %w", err)
	}
	if err := app.Reviews.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize reviews: %w", err)
	}
	app.Session.Restore(ctx)

	return app, nil
}

// Context returns ctx carrying the application logger, for handing to the
// services.
func (app *Application) Context(ctx context.Context) context.Context {
	return slogx.WithContext(ctx, app.logger)
}

// Logger exposes the application logger.
func (app *Application) Logger() *slog.Logger { return app.logger }

// Close releases the underlying storage.
func (app *Application) Close() error { return app.db.Close() }
