// cmd/server/main.go
// This is the entry point for the KYP Backend API server.
// It wires configuration, logging, the product store and the HTTP app together, then listens.
package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/trentd187/kyp-backend/internal/config"
	"github.com/trentd187/kyp-backend/internal/database"
	"github.com/trentd187/kyp-backend/internal/logger"
	"github.com/trentd187/kyp-backend/internal/server"
	"github.com/trentd187/kyp-backend/internal/store"
)

func main() {
	// Until the config is loaded we don't know the level or format, so start with defaults.
	logger.Init(config.DefaultLogLevel, true)

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

// run loads the config, builds the app and blocks serving it.
// Any error returned before app.Listen means no port was ever bound.
func run() error {
	// Load configuration from environment variables (and optionally a .env file).
	// Missing Supabase credentials abort startup: there are no defaults for them.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("supabase URL and key must be provided in environment variables: %w", err)
	}

	logger.Init(cfg.LogLevel, cfg.IsDevelopment())

	// Build the single product store shared by every request.
	products, err := newProductStore(cfg)
	if err != nil {
		return fmt.Errorf("initialise product store: %w", err)
	}

	app := server.New(products, server.Options{})

	// ":" + cfg.Port produces a string like ":3001": listen on all network interfaces.
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Starting server")
	return app.Listen(":" + cfg.Port)
}

// newProductStore picks the backend transport. Supabase REST is the default;
// DATABASE_URL switches to a direct Postgres connection through GORM.
func newProductStore(cfg *config.Config) (store.ProductStore, error) {
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("Reading products directly from Postgres")
		return store.NewGormStore(db), nil
	}

	log.Info().Str("url", cfg.SupabaseURL).Msg("Reading products through Supabase REST")
	return store.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey)
}
