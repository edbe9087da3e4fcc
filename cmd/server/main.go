package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"
	"voyage-simulator/internal/adapters/repositories"
	"voyage-simulator/internal/api"
	"voyage-simulator/internal/config"
	"voyage-simulator/internal/logging"

	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite) behind ports and starts the HTTP server.
func main() {
	cfg, found := config.Load()
	log := logging.New(cfg.LogLevel, os.Stdout)
	if !found {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	// Initialize schema and seed the demo scenario on startup for local runs.
	if err := initAndSeed(db, cfg.SeedPath); err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	repo := repositories.NewSQLScenarioRepository(db)
	store := repositories.NewSQLiteRunStore(db)
	router := api.NewRouter(repo, store, log, cfg.MaxHours)

	log.Info().Str("addr", ":"+cfg.Port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
