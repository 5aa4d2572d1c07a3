package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/gameshelf/internal/catalog"
	"github.com/desertthunder/gameshelf/internal/repositories"
	"github.com/desertthunder/gameshelf/internal/shared"
	"github.com/urfave/cli/v3"
)

// SeedLibrary runs the deterministic library seeder for a user.
//
// No-ops for users who already own anything, same as the signup and signin
// endpoints.
func (r *Runner) SeedLibrary(ctx context.Context, cmd *cli.Command) error {
	username := cmd.StringArg("username")
	if username == "" {
		return fmt.Errorf("%w: username is required", shared.ErrMissingArgument)
	}

	count := cmd.Int("count")
	if count <= 0 {
		count = catalog.DefaultSeedCount
	}

	config := r.config
	if path := cmd.String("config"); path != "" {
		config = r.loadConfigFile(path)
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	library := repositories.NewLibraryRepository(db)

	seeder := catalog.NewSeeder(r.catalog, library, r.logger)
	seeder.Seed(ctx, username, count)

	owned, err := library.Count(username)
	if err != nil {
		return fmt.Errorf("failed to count library: %w", err)
	}

	return r.writePlainln("✓ Library for %s holds %d games", username, owned)
}

// seedCommand runs the library seeder directly
func seedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Seed a user's library from the top-rated pool",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "username",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of games to seed",
				Value: catalog.DefaultSeedCount,
			},
		},
		Action: r.SeedLibrary,
	}
}
