package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/desertthunder/gameshelf/internal/catalog"
	"github.com/desertthunder/gameshelf/internal/repositories"
	"github.com/desertthunder/gameshelf/internal/server"
	"github.com/desertthunder/gameshelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve wires the repositories, catalog gateway, and HTTP handlers together
// and runs the API server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.config
	if path := cmd.String("config"); path != "" {
		config = r.loadConfigFile(path)
	}

	if port := cmd.Int("port"); port != 0 {
		config.Server.Port = port
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	library := repositories.NewLibraryRepository(db)
	profiles := repositories.NewProfileRepository(db)
	friends := repositories.NewFriendRepository(db)
	channels := repositories.NewChannelRepository(db)
	messages := repositories.NewMessageRepository(db)

	seeder := catalog.NewSeeder(r.catalog, library, r.logger)

	router := server.NewBasicRouter()
	router.Use(server.Logging(r.logger), server.CORS(), server.RequestID())

	handlers := []server.Handler{
		server.NewStoreHandler(r.catalog, library, r.logger),
		server.NewAuthHandler(profiles, seeder, r.logger),
		server.NewLibraryHandler(library, r.logger),
		server.NewSocialHandler(friends, channels, messages, r.logger),
		server.NewDebugHandler(config, r.creds),
	}
	for _, h := range handlers {
		h.Register(router)
	}

	srv := server.New(config.Server, router, r.logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}

// serveCommand runs the HTTP API server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the gameshelf API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to listen on (overrides config)",
			},
		},
		Action: r.Serve,
	}
}
