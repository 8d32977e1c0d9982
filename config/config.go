package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	LogLevel string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override. Missing values fall back to defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:     envOr("FASTHANDS_ADDR", ":8080"),
		LogLevel: envOr("FASTHANDS_LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
