// Command migrate applies the embedded PostgreSQL migrations and exits.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"telco-billing/config"
	pgStorage "telco-billing/internal/adapter/storage/postgres"
	"telco-billing/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TELCO_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty, "telco-billing-migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := pgStorage.Migrate(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		pool.Close()
		os.Exit(1)
	}

	log.Info().Msg("Migrations up to date")
}
