package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the box office. Every field maps to
// an environment variable and has a sensible default, so the program runs
// with no configuration at all.
type Config struct {
	Env       string // APP_ENV: development or production, picks the log format
	ExportDir string // EXPORT_DIR: directory the text exports are written to
}

// Load reads the optional .env file and then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:       getenv("APP_ENV", "development"),
		ExportDir: getenv("EXPORT_DIR", "."),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Printf("WARN: %s not set, using default %s", key, fallback)
	return fallback
}
