package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"inventory/internal/adapters/out/postgres"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Globals are resolved before any command runs.
type Globals struct {
	Logger zerolog.Logger
}

// ServeCmd migrates the schema, starts the scheduled jobs and serves HTTP
// until ctx is cancelled.
type ServeCmd struct {
	Config
}

func (c *ServeCmd) Run(ctx context.Context, globals *Globals) error {
	logger := globals.Logger

	db, closeDB, err := openDatabase(ctx, c.Database, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	root, err := NewCompositionRoot(c.Config, db, logger)
	if err != nil {
		return fmt.Errorf("compose application: %w", err)
	}

	e, err := root.CreateHTTPServer(ctx)
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	srv := &http.Server{
		Addr:              "0.0.0.0:" + c.HTTPPort,
		Handler:           e,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       time.Minute,
		WriteTimeout:      time.Minute,
		IdleTimeout:       5 * time.Minute,
		MaxHeaderBytes:    8 * 1024,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// MigrateCmd creates or updates the schema and exits.
type MigrateCmd struct {
	Database DatabaseConfig `embed:"" prefix:"db-"`
}

func (c *MigrateCmd) Run(ctx context.Context, globals *Globals) error {
	_, closeDB, err := openDatabase(ctx, c.Database, globals.Logger)
	if err != nil {
		return err
	}
	defer closeDB()

	globals.Logger.Info().Msg("schema is up to date")
	return nil
}

// openDatabase connects and applies migrations.
func openDatabase(ctx context.Context, cfg DatabaseConfig, logger zerolog.Logger) (*gorm.DB, func(), error) {
	db, err := postgres.Open(ctx, cfg.Postgres(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if err := postgres.Migrate(ctx, db); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, closeDB, nil
}
