package main

import (
	"context"
	"os"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/bootstrap"
	"github.com/M2-SYNDICATE/Atomichack3.0/internal/cli"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context) error {
	app, err := bootstrap.NewApp()
	if err != nil {
		bootstrap.InitLogger(false).ErrorContext(ctx, "startup failed", "error", err)
		return err
	}

	root := cli.NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil {
		app.Logger.ErrorContext(ctx, "command failed", "error", err)
		return err
	}
	return nil
}
