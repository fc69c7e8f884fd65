package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the env-driven runtime configuration. main.go loads .env first
// via godotenv; plain environment variables win on Render-style deployments.
type Config struct {
	// BaseURL is the backend the client engine talks to. Empty means the
	// in-process stub backend.
	BaseURL string
	// Port the stub backend listens on.
	Port string
	// HTTPTimeout bounds every backend call.
	HTTPTimeout time.Duration
	// MarkerFile is where the "last viewed reply" marker is persisted.
	MarkerFile string
	// RedisAddr, when set, switches marker persistence to Redis.
	RedisAddr string
}

func Load() Config {
	return Config{
		BaseURL:     os.Getenv("BASE_URL"),
		Port:        getEnv("PORT", "8000"),
		HTTPTimeout: getDuration("HTTP_TIMEOUT_SECONDS", 60*time.Second),
		MarkerFile:  getEnv("MARKER_FILE", ".milestone-tracker.json"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
