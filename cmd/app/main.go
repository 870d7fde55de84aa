package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"inventory/cmd"
	"inventory/internal/logger"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

var (
	version = "dev"
	cli     struct {
		Dev     bool             `help:"Enable development logging." env:"DEV"`
		Version kong.VersionFlag `help:"Print the version."`
		Serve   cmd.ServeCmd     `cmd:"" default:"1" help:"Serve the inventory API (default)."`
		Migrate cmd.MigrateCmd   `cmd:"" help:"Apply the database schema and exit."`
	}
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = os.Stderr.WriteString("load .env: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&cli,
		kong.Name("inventory"),
		kong.Description("Multi-tenant order and sales tracking service."),
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	err := kctx.Run(&cmd.Globals{Logger: logger.Setup(cli.Dev)})
	kctx.FatalIfErrorf(err)
}
