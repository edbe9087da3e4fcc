package main

import (
	"context"
	"database/sql"
	"os"
	"voyage-simulator/internal/adapters/repositories"
	"voyage-simulator/internal/config"
	"voyage-simulator/internal/logging"
	"voyage-simulator/internal/platform/db"
	"voyage-simulator/internal/services"

	"github.com/rs/zerolog"
)

// dbtool prepares a Postgres database: schema, seed scenario, and (with
// "run" as the first argument) one simulation whose summary is stored there.
func main() {
	cfg, found := config.Load()
	log := logging.New(cfg.LogLevel, os.Stdout)
	if !found {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	if err := initAndSeed(conn, cfg.SeedPath, log); err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	if len(os.Args) > 1 && os.Args[1] == "run" {
		run, err := services.RunScenario(
			context.Background(),
			services.RunScenarioRequest{MaxHours: cfg.MaxHours},
			repositories.NewSQLScenarioRepository(conn),
			repositories.NewPostgresRunStore(conn),
			log,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("run scenario")
		}
		log.Info().
			Str("run_id", run.ID.String()).
			Int("hours", run.Hours).
			Int("arrived", run.Arrived).
			Int("destroyed", run.Destroyed).
			Msg("run stored")
	}
}

func initAndSeed(conn *sql.DB, seedPath string, log zerolog.Logger) error {
	log.Info().Msg("initializing database schema")
	if err := repositories.InitPostgresSchema(conn); err != nil {
		return err
	}
	log.Info().Msg("schema ready")

	log.Info().Str("seed", seedPath).Msg("seeding database")
	if err := repositories.SeedPostgresFromJSON(conn, seedPath); err != nil {
		return err
	}
	log.Info().Msg("seeding complete")

	return nil
}
