package main

import (
	"os"

	"alzes/internal/cli"
	"alzes/internal/log"
)

func main() {
	// Load .env, configuration, and structured logging on stderr.
	cfg, logger := cli.Bootstrap()

	// Shutdown signals cancel everything downstream.
	ctx, cancel := cli.SignalContext()
	defer cancel()

	store, cleanup, err := cli.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open backend",
			log.FieldError, err,
			log.FieldBackend, cfg.Backend)
		os.Exit(1)
	}

	app := cli.NewApp(store, logger, os.Stdout)
	runErr := app.Run(ctx, os.Args[1:])

	if cleanup != nil {
		if err := cleanup(); err != nil {
			logger.Error("Backend cleanup failed", log.FieldError, err)
		}
	}
	if runErr != nil {
		logger.Error("Command failed", log.FieldError, runErr)
		os.Exit(1)
	}
}
