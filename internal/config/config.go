// Package config handles loading and validating runtime configuration for the KYP Backend API.
// Configuration values (like the Supabase URL and API port) are read from environment variables
// rather than being hardcoded, so the same binary can run locally and in production with
// nothing but a different set of environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// Handy in development; in production the deployment platform sets real env vars instead.
	"github.com/joho/godotenv"
)

// Environment variable names. Exported so tests and docs refer to a single source of truth.
const (
	EnvSupabaseURL = "SUPABASE_URL"
	EnvSupabaseKey = "SUPABASE_KEY"
	EnvPort        = "PORT"
	EnvEnv         = "ENV"
	EnvLogLevel    = "LOG_LEVEL"
	EnvDatabaseURL = "DATABASE_URL"
)

// Defaults for the optional settings.
const (
	DefaultPort     = "3001"
	DefaultEnv      = "development"
	DefaultLogLevel = "info"
)

// ErrMissingEnv is returned (wrapped) by Load when a required variable is unset or empty.
// Callers can test for it with errors.Is.
var ErrMissingEnv = errors.New("missing required environment variable")

// Config holds all runtime configuration values for the application.
type Config struct {
	Port        string // The TCP port the HTTP server will listen on (e.g., "3001")
	SupabaseURL string // Base URL of the Supabase project (e.g., "https://xyz.supabase.co")
	SupabaseKey string // Service key sent as both the apikey header and the bearer token
	DatabaseURL string // Optional Postgres DSN; when set, products are read over SQL instead of REST
	LogLevel    string // zerolog level name: "debug", "info", "warn", "error"
	Env         string // The runtime environment: "development" or "production"
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == DefaultEnv
}

// Load reads configuration from environment variables and returns a populated Config.
// It first tries to load a .env file for local development; the error from godotenv.Load
// is discarded on purpose because a missing .env is normal in production.
//
// SUPABASE_URL and SUPABASE_KEY have no defaults. If either is absent Load returns an
// error listing every missing variable, and the caller is expected to abort startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getenvDefault(EnvPort, DefaultPort),
		SupabaseURL: strings.TrimSpace(os.Getenv(EnvSupabaseURL)),
		SupabaseKey: strings.TrimSpace(os.Getenv(EnvSupabaseKey)),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		LogLevel:    getenvDefault(EnvLogLevel, DefaultLogLevel),
		Env:         getenvDefault(EnvEnv, DefaultEnv),
	}

	var missing []string
	if cfg.SupabaseURL == "" {
		missing = append(missing, EnvSupabaseURL)
	}
	if cfg.SupabaseKey == "" {
		missing = append(missing, EnvSupabaseKey)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getenvDefault returns the value of key, or def if the variable is unset or empty.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
