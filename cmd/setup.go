package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/bandsite/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the embedded example configuration to --config.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		return fmt.Errorf("%w: --config", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Wrote %s\n", path)
}

// SetupDatabase initializes the fetch log database and runs migrations.
//
// The database is created even when database.enabled is false, so it can be switched on later.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	dbConfig := config.Database
	dbConfig.Enabled = true

	r.logger.Info("initializing database", "path", dbConfig.Path)

	db, err := shared.OpenDatabase(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	if !config.Database.Enabled {
		r.logger.Warn("database.enabled is false; fetches will not be recorded until it is turned on")
	}

	r.logger.Infof("setup complete for database: %v", dbConfig.Path)
	return r.writePlain("✓ Database ready at %s\n", dbConfig.Path)
}
