// Package cli provides common CLI initialization utilities and the
// handlers behind each alzes subcommand.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"alzes/internal/backend"
	"alzes/internal/config"
	"alzes/internal/log"
	"alzes/internal/records"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging on stderr at the given
// level and sets it as the default logger. Stdout stays free for data.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.Config{
		Level:     log.ParseLevel(level),
		Component: log.ComponentCLI,
	})
	log.SetDefault(logger)
	return logger
}

// Bootstrap loads the environment, the configuration, and the logger
// every subcommand shares. Exits the process on validation failure.
func Bootstrap() (*config.Config, *log.Logger) {
	LoadEnvFile()
	cfg := config.Load()
	logger := SetupLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg, logger
}

// OpenStore selects the backend from configuration and loads the record
// store from it. The returned cleanup releases backend resources; it is
// nil for backends that hold none.
func OpenStore(ctx context.Context, cfg *config.Config, logger *log.Logger) (*records.Store, backend.CleanupFunc, error) {
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	result, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		return nil, nil, err
	}

	store := records.New(result.Store, logger)
	store.Load(ctx)
	return store, result.Cleanup, nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
