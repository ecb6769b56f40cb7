// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultOpsAddr         = ":8080"
	DefaultShutdownTimeout = 30 * time.Second
	DefaultLogLevel        = "info"
)

type Config struct {
	// LogLevel is a zap level name.
	LogLevel string
	// OpsAddr is where health, status and metrics are served. Empty disables
	// the ops server.
	OpsAddr         string
	ShutdownTimeout time.Duration
	// TelemetryEnabled turns on the OTLP exporters. It follows
	// OTEL_EXPORTER_OTLP_ENDPOINT being set.
	TelemetryEnabled bool
}

// LoadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// Load builds a Config from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to read variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		LogLevel:        DefaultLogLevel,
		OpsAddr:         DefaultOpsAddr,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		if _, err := zapcore.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = v
	}

	if v, ok := lookup("OPS_ADDR"); ok {
		cfg.OpsAddr = v
	}

	if v, ok := lookup("SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: must be positive, got %s", d)
		}
		cfg.ShutdownTimeout = d
	}

	if v, ok := lookup("OTEL_EXPORTER_OTLP_ENDPOINT"); ok && v != "" {
		cfg.TelemetryEnabled = true
	}

	return cfg, nil
}
