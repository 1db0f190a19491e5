package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
}

// Load reads configuration from environment variables with sensible
// defaults. A local .env file is loaded best-effort for dev convenience.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
