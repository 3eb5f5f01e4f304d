package config

import (
	"log/slog"
	"os"
	"strings"
)

// Export captures configuration for the catalog export command.
type Export struct {
	Format   string
	Output   string
	LogLevel slog.Level
}

// FromEnv builds an Export config from environment variables so main stays lean.
func FromEnv() Export {
	format := os.Getenv("LOOKUPS_FORMAT")
	if format == "" {
		format = "json"
	}
	output := os.Getenv("LOOKUPS_OUTPUT")
	if output == "" {
		output = "-"
	}

	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return Export{
		Format:   format,
		Output:   output,
		LogLevel: level,
	}
}
