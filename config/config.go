package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL = "http://localhost:3000/api"
	defaultTimeout    = 30 * time.Second
)

// Config holds the client's runtime configuration. Values come from the
// environment, optionally seeded from a .env file in the working directory.
type Config struct {
	APIBaseURL string
	Timeout    time.Duration
	Debug      bool
}

// Load reads configuration from the environment. Every value has a default
// suitable for a locally running backend, so a bare invocation works.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		APIBaseURL: getenv("CINEBOOK_API_URL", defaultAPIBaseURL),
		Timeout:    timeoutFromEnv(),
		Debug:      os.Getenv("CINEBOOK_DEBUG") != "",
	}
}

func getenv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func timeoutFromEnv() time.Duration {
	raw := os.Getenv("CINEBOOK_TIMEOUT_SECONDS")
	if raw == "" {
		return defaultTimeout
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(seconds) * time.Second
}
