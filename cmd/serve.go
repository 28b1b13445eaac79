package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/bandsite/internal/metrics"
	"github.com/desertthunder/bandsite/internal/repositories"
	"github.com/desertthunder/bandsite/internal/server"
	"github.com/desertthunder/bandsite/internal/services"
	"github.com/desertthunder/bandsite/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the HTTP server until interrupted.
//
// When the database is enabled every fetch is recorded in the fetch log.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	if host := cmd.String("host"); host != "" {
		config.Server.Host = host
	}
	if port := cmd.Int("port"); port != 0 {
		config.Server.Port = int(port)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	if r.metrics == nil {
		r.metrics = metrics.New()
	}

	var recorder services.FetchRecorder
	db, err := shared.OpenDatabase(config.Database)
	switch {
	case errors.Is(err, shared.ErrDatabaseDisabled):
		r.logger.Debug("fetch log disabled")
	case err != nil:
		return fmt.Errorf("failed to open fetch log: %w", err)
	default:
		defer db.Close()
		recorder = repositories.NewFetchLogRecorder(repositories.NewFetchLogRepository(db))
		r.logger.Info("recording fetches", "database", config.Database.Path)
	}

	sheet := r.sheetService(config, recorder)
	routes := server.NewRoutes(server.RoutesOpts{
		Source:  sheet,
		Metrics: r.metrics,
		Logger:  shared.WithLogger(r.logger, "component", "http"),
	})

	srv := server.NewServer(server.ServerOpts{
		Addr:         config.Server.Addr(),
		Handler:      routes,
		ReadTimeout:  time.Duration(config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(config.Server.WriteTimeoutSeconds) * time.Second,
		Logger:       r.logger,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("serving tour feed", "sheet", sheet.URL(), "providers", sheet.Providers())
	return srv.Run(ctx)
}
