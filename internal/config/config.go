// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddress     string
	LogLevel        slog.Level
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads FTRACKER_* variables, falling back to defaults for anything unset or malformed.
func Load() Config {
	return Config{
		HTTPAddress:     getEnv("FTRACKER_HTTP_ADDRESS", ":8222"),
		LogLevel:        getLevelEnv("FTRACKER_LOG_LEVEL", slog.LevelInfo),
		ReadTimeout:     getDurationEnv("FTRACKER_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDurationEnv("FTRACKER_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDurationEnv("FTRACKER_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

func getLevelEnv(key string, fallback slog.Level) slog.Level {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return fallback
	}
	return level
}
