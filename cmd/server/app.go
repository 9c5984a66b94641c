package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	newsService service.NewsService
}

// newApplication wires the stores and the news service over an established
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	stores := postgres.NewStores(db, logger)
	transactor := postgres.NewTransactor(db, logger)

	app := &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		newsService: service.NewNewsService(stores, transactor, logger),
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := newRouter(routerDeps{
		newsService:    app.newsService,
		logger:         app.logger,
		allowedOrigins: app.config.Server.CORSAllowedOrigins,
	})

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("Application shutdown completed")
}
