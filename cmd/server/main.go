// Package main implements the entry point for the news API server, which
// serves topics, articles, comments and users from PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/docgen"
	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/seed"
)

// options holds the command-line flags.
type options struct {
	migrate string
	seed    string
	routes  bool
}

// parseFlags parses the command-line arguments (without the program name).
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("news-api", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.migrate, "migrate", "",
		"run a database migration command and exit ("+strings.Join(postgres.MigrationCommands, "|")+")")
	fs.StringVar(&opts.seed, "seed", "",
		"replace all data with an embedded fixture set and exit (development|test)")
	fs.BoolVar(&opts.routes, "routes", false, "print markdown route documentation and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.migrate != "" && opts.seed != "" {
		return options{}, fmt.Errorf("-migrate and -seed cannot be combined")
	}
	return opts, nil
}

// main is the entry point for the news-api server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("news-api: %v", err)
	}
}

// run loads configuration, connects to the database and then either executes
// a one-shot command (-migrate, -seed, -routes) or serves HTTP until ctx is
// cancelled.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	if opts.routes {
		router := newRouter(routerDeps{logger: slog.Default()})
		_, err := fmt.Fprintln(stdout, docgen.MarkdownRoutesDoc(router, docgen.MarkdownOpts{
			ProjectPath: "github.com/phrazzld/news-api",
			Intro:       "Routes served by the news API.",
		}))
		return err
	}

	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	switch {
	case opts.migrate != "":
		defer closeDB(db, appLogger)
		return postgres.Migrate(ctx, db, opts.migrate, appLogger)
	case opts.seed != "":
		defer closeDB(db, appLogger)
		return seed.Run(ctx, db, seed.Dataset(opts.seed), appLogger)
	}

	app := newApplication(cfg, appLogger, db)
	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
