package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

// LoadEnv loads the .env file for the current APP_ENV into the process
// environment. Missing files are fine; the OS environment is used as-is.
func LoadEnv() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	if err := gotenv.Load(".env." + env); err != nil {
		slog.Warn("[Config] No .env file found, using OS environment",
			slog.String("env", env))
	}
}
