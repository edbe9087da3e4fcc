// Package config reads runtime settings from the environment, after an
// optional .env file has been loaded.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MaxHours <= 0 lets a simulation run until every vehicle is terminal.
type Config struct {
	Port        string
	DBPath      string
	SeedPath    string
	LogLevel    string
	MaxHours    int
	DatabaseURL string
}

// Load .env (if present) into the environment and collect every setting.
// The returned bool reports whether a .env file was found.
func Load() (Config, bool) {
	found := godotenv.Load() == nil

	return Config{
		Port:        Get("PORT", "8080"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		SeedPath:    Get("SEED_PATH", "data/seeds/scenario.json"),
		LogLevel:    Get("LOG_LEVEL", "info"),
		MaxHours:    GetInt("MAX_HOURS", 100000),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
	}, found
}

// Value of the environment variable key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Like Get, for integers. Unparseable values fall back too.
func GetInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}
