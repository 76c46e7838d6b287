// Package cli provides common initialization for the tally entry point:
// env loading, logging setup, config validation and optional resources.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"tally/internal/config"
	applog "tally/internal/log"
	"tally/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitArchive initializes the optional SQLite run archive. An empty path
// disables archiving and returns nil; a configured path that cannot be
// opened only logs a warning, since the archive never gates the transform.
func InitArchive(logger *applog.Logger, dbPath string) *storage.SQLiteRepository {
	if dbPath == "" {
		return nil
	}
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Warn("Failed to initialize run archive, continuing without it",
			applog.FieldError, err, "path", dbPath)
		return nil
	}
	logger.Info("Initialized run archive", "path", dbPath)
	return repo
}
