package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"voyage-simulator/internal/adapters/repositories"
	"voyage-simulator/internal/config"
	"voyage-simulator/internal/logging"
	"voyage-simulator/internal/services"
)

// simulate runs the scenario in SEED_PATH to completion without a database
// and writes the final run summary to stdout as JSON. Logs go to stderr.
func main() {
	cfg, _ := config.Load()
	log := logging.New(cfg.LogLevel, os.Stderr)

	seed, err := repositories.ReadSeedFile(cfg.SeedPath)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := services.Simulate(ctx, seed, cfg.MaxHours, log)
	if err != nil {
		log.Fatal().Err(err).Msg("simulate")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		log.Fatal().Err(err).Msg("write report")
	}
}
