package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/M2-SYNDICATE/Atomichack3.0/config"
)

// logLevel is shared by every handler InitLogger creates, so verbosity
// can be raised after the app graph is wired.
var logLevel = new(slog.LevelVar)

// InitLogger initializes the structured logger. Logs go to stderr so
// command output on stdout stays machine-readable.
func InitLogger(isDev bool) *slog.Logger {
	logLevel.Set(slog.LevelInfo)
	if isDev {
		logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// SetVerbose lowers the log level to debug for the rest of the process.
func SetVerbose() {
	logLevel.Set(slog.LevelDebug)
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}
