package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Load reads .env into the environment. Missing file is fine in
// containerized deploys where everything comes in via real env vars.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment")
	}
}

func Config(key string) string {
	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
