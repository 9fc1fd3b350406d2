// Package config reads server settings from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/evcraddock/rent-finder/internal/upload"
)

// Config holds the settings of rf serve.
type Config struct {
	Port           string
	DBPath         string // empty = db.DefaultPath
	DevMode        bool
	PersistCatalog bool
	Upload         upload.Config
	CORSOrigins    []string
	SessionCleanup string // cron spec
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are named, without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv creates a Config from RF_* environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:           envOrDefault("RF_PORT", "8080"),
		DBPath:         os.Getenv("RF_DB_PATH"),
		DevMode:        os.Getenv("RF_DEV_MODE") == "true",
		PersistCatalog: os.Getenv("RF_PERSIST_CATALOG") == "true",
		Upload:         upload.DefaultConfig(),
		CORSOrigins:    splitList(envOrDefault("RF_CORS_ORIGINS", "*")),
		SessionCleanup: envOrDefault("RF_SESSION_CLEANUP", "@hourly"),
	}

	var err error
	if cfg.Upload.MinDelay, err = durationEnv("RF_UPLOAD_MIN_DELAY", cfg.Upload.MinDelay); err != nil {
		return Config{}, err
	}
	if cfg.Upload.MaxDelay, err = durationEnv("RF_UPLOAD_MAX_DELAY", cfg.Upload.MaxDelay); err != nil {
		return Config{}, err
	}
	if cfg.Upload.MaxDelay < cfg.Upload.MinDelay {
		return Config{}, fmt.Errorf("RF_UPLOAD_MAX_DELAY (%s) is below RF_UPLOAD_MIN_DELAY (%s)",
			cfg.Upload.MaxDelay, cfg.Upload.MinDelay)
	}

	if v := os.Getenv("RF_UPLOAD_FAILURE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 || rate > 1 {
			return Config{}, fmt.Errorf("RF_UPLOAD_FAILURE_RATE must be a number between 0 and 1, got %q", v)
		}
		cfg.Upload.FailureRate = rate
	}

	return cfg, nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration such as 1.5s, got %q", key, v)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
